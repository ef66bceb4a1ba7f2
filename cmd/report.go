package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/logger"
	"github.com/kazuma-desu/banner/pkg/models"
	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/parsers"
	"github.com/kazuma-desu/banner/pkg/report"
	"github.com/kazuma-desu/banner/pkg/validator"
)

var (
	reportOpts struct {
		layout     layoutFlags
		title      string
		format     string
		noValidate bool
	}

	reportCmd = &cobra.Command{
		Use:   "report <file>",
		Short: "Render a section report from a YAML or JSON file",
		Long: `Render a report file: the title centered in a border line, then one line per
entry in the form

  0001: kind         'value'

with values shortened to --max-length characters.

Layout precedence is: flags, then the document's own fields, then the config
file, then built-in defaults. The document is validated first; errors stop
rendering and warnings are logged.`,
		Example: `  # Render tokens.yaml with the configured layout
  banner report tokens.yaml

  # Override the title and shorten values to 12 characters
  banner report tokens.yaml --title LEXER --max-length 12

  # Group entries by kind
  banner report tokens.yaml -o tree

  # Machine-readable output
  banner report tokens.json -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}
)

func init() {
	rootCmd.AddCommand(reportCmd)

	addBorderFlags(reportCmd, &reportOpts.layout)
	addMaxLengthFlag(reportCmd, &reportOpts.layout, "max-length")
	reportCmd.Flags().StringVar(&reportOpts.title, "title", "",
		"title to use instead of the document's")
	reportCmd.Flags().StringVar(&reportOpts.format, "format", string(models.FormatAuto),
		"file format: auto, yaml, json")
	reportCmd.Flags().BoolVar(&reportOpts.noValidate, "no-validate", false,
		"skip document validation")
}

func runReport(cmd *cobra.Command, args []string) error {
	appCfg := loadAppConfig()

	format, err := resolveOutputFormat(appCfg, report.SupportedFormats)
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0], reportOpts.format)
	if err != nil {
		return err
	}
	if reportOpts.title != "" {
		doc.Title = reportOpts.title
	}
	logVerbose(format, "Loaded report", "file", args[0], "entries", len(doc.Entries))

	base, err := appCfg.Layout()
	if err != nil {
		return err
	}

	if !reportOpts.noValidate {
		if err := checkDocument(doc, base); err != nil {
			return err
		}
	}

	docLayout, err := doc.Layout(base)
	if err != nil {
		return err
	}
	layout, err := resolveLayout(cmd, docLayout, &reportOpts.layout)
	if err != nil {
		return err
	}

	if !reportOpts.noValidate {
		warnDocument(doc, layout)
	}

	r := &report.Renderer{
		Layout: layout,
		Format: format,
		Styled: output.IsTerminal(),
	}
	return r.Render(os.Stdout, doc)
}

func loadDocument(path, format string) (*models.Document, error) {
	ft := models.FormatType(format)
	if ft != "" && !ft.IsValid() {
		return nil, fmt.Errorf("invalid file format: %s (use auto, yaml, json)", format)
	}

	doc, err := parsers.NewRegistry().Load(path, ft)
	if err != nil {
		return nil, wrapFileError(path, err)
	}
	return doc, nil
}

// checkDocument fails on validation errors. Warnings depend on the final
// layout and are reported by warnDocument.
func checkDocument(doc *models.Document, base models.Layout) error {
	result := validator.NewValidator(false).Validate(doc, base)
	if result.Valid {
		return nil
	}

	errs, _ := result.Counts()
	for _, issue := range result.Issues {
		if issue.Level == validator.LevelError {
			logger.Log.Errorw(issue.Message, "field", issue.Key)
		}
	}
	return fmt.Errorf("%w: %d error(s), run 'banner validate' for details", errValidationFailed, errs)
}

// warnDocument logs warnings for the layout the report is rendered with.
func warnDocument(doc *models.Document, layout models.Layout) {
	result := validator.NewValidator(false).ValidateLayout(doc, layout)
	for _, issue := range result.Issues {
		logger.Log.Warnw(issue.Message, "field", issue.Key)
	}
}
