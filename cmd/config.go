package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/config"
	"github.com/kazuma-desu/banner/pkg/output"
)

const errFailedToLoadConfiguration = "failed to load configuration: %w"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage banner configuration",
	Long:  `View and change the defaults stored in the config file.`,
}

var viewConfigCmd = &cobra.Command{
	Use:   "view",
	Short: "View current configuration",
	RunE:  runViewConfig,
}

var getConfigCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Long:  `Keys: log-level, default-format, width, fill, space, max-length`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGetConfig,
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Keys: log-level, default-format, width, fill, space, max-length`,
	Example: `  banner config set width 72
  banner config set fill -
  banner config set default-format table`,
	Args: cobra.ExactArgs(2),
	RunE: runSetConfig,
}

type configView struct {
	Path          string `json:"path" yaml:"path"`
	LogLevel      string `json:"logLevel" yaml:"log-level"`
	DefaultFormat string `json:"defaultFormat" yaml:"default-format"`
	Width         int    `json:"width" yaml:"width"`
	Fill          string `json:"fill" yaml:"fill"`
	Space         int    `json:"space" yaml:"space"`
	MaxLength     int    `json:"maxLength" yaml:"max-length"`
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(viewConfigCmd)
	configCmd.AddCommand(getConfigCmd)
	configCmd.AddCommand(setConfigCmd)
}

// runViewConfig shows the effective settings, with defaults filled in.
func runViewConfig(_ *cobra.Command, _ []string) error {
	format, err := output.NormalizeFormat(outputFormat, formatsLine)
	if err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	view := configView{
		Path:          path,
		LogLevel:      valueOr(cfg.LogLevel, "warn"),
		DefaultFormat: valueOr(cfg.DefaultFormat, output.FormatSimple.String()),
		Width:         layout.Width,
		Fill:          string(layout.Fill),
		Space:         layout.Space,
		MaxLength:     layout.MaxLength,
	}

	if format.IsStructured() {
		return output.Write(os.Stdout, format, view)
	}

	output.KeyValue("path", view.Path)
	output.KeyValue("log-level", view.LogLevel)
	output.KeyValue("format", view.DefaultFormat)
	output.KeyValue("width", strconv.Itoa(view.Width))
	output.KeyValue("fill", strconv.Quote(view.Fill))
	output.KeyValue("space", strconv.Itoa(view.Space))
	output.KeyValue("max-length", strconv.Itoa(view.MaxLength))
	return nil
}

func runGetConfig(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	if value == "" {
		output.Info(fmt.Sprintf("%s is not set, the built-in default applies", args[0]))
		return nil
	}

	fmt.Println(value)
	return nil
}

func runSetConfig(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	if err := cfg.SetValue(key, value); err != nil {
		return err
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	output.Success(fmt.Sprintf("Set %s to %s", key, output.Truncate(value, 40)))
	if key == "default-format" && !slices.Contains(formatsLine, output.Format(cfg.DefaultFormat)) {
		output.Warning(fmt.Sprintf("%s only applies to report; other commands fall back to simple", cfg.DefaultFormat))
	}
	return nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
