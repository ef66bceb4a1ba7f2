package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/text"
)

var (
	coverOpts layoutFlags

	coverCmd = &cobra.Command{
		Use:   "cover <text>",
		Short: "Center text inside a border line",
		Long: `Center text inside a line of fill characters.

The line is made of a run of the fill character, --space blanks, the text,
--space blanks and another run of fill, --width characters in total. When
the remaining fill is odd the right side gets the extra character.

If the text and its spacing leave no room for fill, the text is printed
unchanged.`,
		Example: `  # Default border from config (40 wide, '=' fill, 1 space)
  banner cover TITLE

  # Narrow dashed border without spacing
  banner cover TITLE --width 20 --fill - --space 0

  # JSON output for scripting
  banner cover TITLE -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runCover,
	}
)

type coverResult struct {
	Text   string `json:"text" yaml:"text"`
	Width  int    `json:"width" yaml:"width"`
	Fill   string `json:"fill" yaml:"fill"`
	Space  int    `json:"space" yaml:"space"`
	Fits   bool   `json:"fits" yaml:"fits"`
	Result string `json:"result" yaml:"result"`
}

func init() {
	rootCmd.AddCommand(coverCmd)
	addBorderFlags(coverCmd, &coverOpts)
}

func runCover(cmd *cobra.Command, args []string) error {
	appCfg := loadAppConfig()

	format, err := resolveOutputFormat(appCfg, formatsLine)
	if err != nil {
		return err
	}

	base, err := appCfg.Layout()
	if err != nil {
		return err
	}
	layout, err := resolveLayout(cmd, base, &coverOpts)
	if err != nil {
		return err
	}

	label := args[0]
	result, err := text.Cover(label, layout.Width, layout.Fill, layout.Space)
	if err != nil {
		return err
	}

	fits := text.Fits(label, layout.Width, layout.Space)
	if !fits {
		logVerbose(format, "Text does not fit, printing it without a border",
			"width", layout.Width, "space", layout.Space)
	}

	if format.IsStructured() {
		return output.Write(os.Stdout, format, coverResult{
			Text:   label,
			Width:  layout.Width,
			Fill:   string(layout.Fill),
			Space:  layout.Space,
			Fits:   fits,
			Result: result,
		})
	}

	fmt.Println(output.StyleIfTerminal(output.BannerStyle, result))
	return nil
}
