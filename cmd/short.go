package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/text"
)

var (
	shortOpts layoutFlags

	shortCmd = &cobra.Command{
		Use:   "short <text>",
		Short: "Cut text to a maximum number of characters",
		Long: `Print the first --length characters of text, or the whole text when it is
not longer than that. Characters are counted as Unicode code points, so
multi-byte text is never cut in the middle of a character.`,
		Example: `  banner short "hello world" --length 5

  # Uses max-length from config when --length is not given
  banner short "a long label"`,
		Args: cobra.ExactArgs(1),
		RunE: runShort,
	}
)

type shortResult struct {
	Text      string `json:"text" yaml:"text"`
	Length    int    `json:"length" yaml:"length"`
	Truncated bool   `json:"truncated" yaml:"truncated"`
	Result    string `json:"result" yaml:"result"`
}

func init() {
	rootCmd.AddCommand(shortCmd)
	addMaxLengthFlag(shortCmd, &shortOpts, "length")
}

func runShort(cmd *cobra.Command, args []string) error {
	appCfg := loadAppConfig()

	format, err := resolveOutputFormat(appCfg, formatsLine)
	if err != nil {
		return err
	}

	base, err := appCfg.Layout()
	if err != nil {
		return err
	}
	layout, err := resolveLayout(cmd, base, &shortOpts)
	if err != nil {
		return err
	}

	input := args[0]
	result, err := text.Short(input, layout.MaxLength)
	if err != nil {
		return err
	}

	if format.IsStructured() {
		return output.Write(os.Stdout, format, shortResult{
			Text:      input,
			Length:    layout.MaxLength,
			Truncated: utf8.RuneCountInString(result) < utf8.RuneCountInString(input),
			Result:    result,
		})
	}

	fmt.Println(result)
	return nil
}
