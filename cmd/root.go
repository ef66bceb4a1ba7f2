package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/banner/pkg/config"
	"github.com/kazuma-desu/banner/pkg/exit"
	"github.com/kazuma-desu/banner/pkg/logger"
	"github.com/kazuma-desu/banner/pkg/text"
)

var (
	logLevel     string
	outputFormat string

	rootCmd = &cobra.Command{
		Use:   "banner",
		Short: "Border lines and shortened strings for console reports",
		Long: `banner draws centered title lines inside a border of fill characters and
shortens long values to a fixed number of characters.

It can also render whole section reports from YAML or JSON files: a covered
title followed by one line per entry.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error) - overrides config file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"output format (simple, json, yaml, table, tree) - overrides config file")
}

// Execute runs the root command and exits with a code matching the error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := exitCode(err)
		logger.Log.Debugw("Command failed", "code", code, "reason", exit.GetDescription(code))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exit.Success
	case errors.Is(err, text.ErrInvalidArgument), errors.Is(err, errValidationFailed):
		return exit.ValidationError
	case errors.Is(err, os.ErrNotExist):
		return exit.FileNotFound
	default:
		return exit.GeneralError
	}
}

func configureLogging() {
	effectiveLogLevel := "warn"

	cfg, err := config.LoadConfig()
	if err == nil && cfg.LogLevel != "" {
		effectiveLogLevel = cfg.LogLevel
	}

	if logLevel != "" {
		effectiveLogLevel = logLevel
	}

	logger.SetLevel(effectiveLogLevel)
}
