package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/validator"
)

var (
	validateOpts struct {
		format string
		strict bool
	}

	validateCmd = &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a report file without rendering it",
		Long: `Parse and validate a report file.

Errors:
  - negative width, space or max-length
  - fill that is not exactly one printable character
  - entries with a negative line or an empty kind

Warnings:
  - empty title, or a title too long for its border
  - values that will be shortened
  - duplicate line numbers

Useful as a CI check before reports are generated.`,
		Example: `  banner validate tokens.yaml

  # Treat warnings as errors
  banner validate tokens.yaml --strict

  # JSON output for CI pipelines
  banner validate tokens.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateOpts.format, "format", "auto",
		"file format: auto, yaml, json")
	validateCmd.Flags().BoolVar(&validateOpts.strict, "strict", false,
		"treat validation warnings as errors")
}

func runValidate(_ *cobra.Command, args []string) error {
	appCfg := loadAppConfig()

	format, err := resolveOutputFormat(appCfg, formatsLine)
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0], validateOpts.format)
	if err != nil {
		return err
	}

	base, err := appCfg.Layout()
	if err != nil {
		return err
	}

	logVerbose(format, "Validating report", "file", args[0], "entries", len(doc.Entries))
	result := validator.NewValidator(validateOpts.strict).Validate(doc, base)

	if format.IsStructured() {
		if err := output.Write(os.Stdout, format, result); err != nil {
			return err
		}
	} else {
		output.PrintValidationResult(result, validateOpts.strict)
	}

	if !result.Valid {
		return fmt.Errorf("%w: %s", errValidationFailed, args[0])
	}
	return nil
}
