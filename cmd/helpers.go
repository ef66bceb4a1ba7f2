package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/config"
	"github.com/kazuma-desu/banner/pkg/logger"
	"github.com/kazuma-desu/banner/pkg/models"
	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/text"
)

// layoutFlags holds the layout flags a command registers. Only flags the
// user actually set override the config.
type layoutFlags struct {
	width     int
	fill      string
	space     int
	maxLength int
}

func addBorderFlags(cmd *cobra.Command, lf *layoutFlags) {
	cmd.Flags().IntVarP(&lf.width, "width", "w", models.DefaultWidth,
		"total line width (overrides config)")
	cmd.Flags().StringVar(&lf.fill, "fill", string(models.DefaultFill),
		"single fill character for the border (overrides config)")
	cmd.Flags().IntVar(&lf.space, "space", models.DefaultSpace,
		"spaces between the text and the border on each side (overrides config)")
}

func addMaxLengthFlag(cmd *cobra.Command, lf *layoutFlags, name string) {
	cmd.Flags().IntVar(&lf.maxLength, name, models.DefaultMaxLength,
		"maximum number of characters to keep (overrides config)")
}

func loadAppConfig() *config.Config {
	appCfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Debugw("Failed to load config, using defaults", "error", err)
		return nil
	}
	return appCfg
}

// resolveLayout merges explicitly set flags over base.
func resolveLayout(cmd *cobra.Command, base models.Layout, lf *layoutFlags) (models.Layout, error) {
	l := base
	flags := cmd.Flags()

	if flags.Changed("width") {
		l.Width = lf.width
	}
	if flags.Changed("fill") {
		fill, err := text.ParseFill(lf.fill)
		if err != nil {
			return models.Layout{}, fmt.Errorf("invalid --fill: %w", err)
		}
		l.Fill = fill
	}
	if flags.Changed("space") {
		l.Space = lf.space
	}
	if flags.Changed("max-length") || flags.Changed("length") {
		l.MaxLength = lf.maxLength
	}

	if err := l.Validate(); err != nil {
		return models.Layout{}, err
	}
	return l, nil
}

// resolveOutputFormat picks the output format: flag, then config, then simple.
// A config default the command doesn't support falls back to simple.
func resolveOutputFormat(appCfg *config.Config, allowed []output.Format) (output.Format, error) {
	if outputFormat != "" {
		return output.NormalizeFormat(outputFormat, allowed)
	}
	if appCfg != nil && appCfg.DefaultFormat != "" {
		if f, err := output.NormalizeFormat(appCfg.DefaultFormat, allowed); err == nil {
			return f, nil
		}
		logger.Log.Debugw("Config default-format not supported here, using simple",
			"format", appCfg.DefaultFormat)
	}
	return output.FormatSimple, nil
}

// formatsLine are the formats for commands that print a single line.
var formatsLine = []output.Format{output.FormatSimple, output.FormatJSON, output.FormatYAML}

func isQuietOutput(format output.Format) bool {
	return format.IsStructured()
}

func logVerbose(format output.Format, msg string, keyvals ...any) {
	if !isQuietOutput(format) {
		logger.Log.Infow(msg, keyvals...)
	}
}
