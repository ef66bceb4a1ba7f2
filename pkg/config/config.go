// Package config reads and writes the banner configuration file.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kazuma-desu/banner/pkg/logger"
	"github.com/kazuma-desu/banner/pkg/models"
	"github.com/kazuma-desu/banner/pkg/output"
	"github.com/kazuma-desu/banner/pkg/text"
)

// Keys lists the settable configuration keys.
var Keys = []string{"log-level", "default-format", "width", "fill", "space", "max-length"}

// Layout returns the configured layout merged over the built-in defaults.
// A nil config yields the defaults.
func (c *Config) Layout() (models.Layout, error) {
	l := models.DefaultLayout()
	if c == nil {
		return l, nil
	}

	if c.Width != 0 {
		l.Width = c.Width
	}
	if c.Fill != "" {
		fill, err := text.ParseFill(c.Fill)
		if err != nil {
			return models.Layout{}, fmt.Errorf("config fill: %w", err)
		}
		l.Fill = fill
	}
	if c.Space != nil {
		l.Space = *c.Space
	}
	if c.MaxLength != 0 {
		l.MaxLength = c.MaxLength
	}

	if err := l.Validate(); err != nil {
		return models.Layout{}, fmt.Errorf("config layout: %w", err)
	}
	return l, nil
}

// Get returns the string value of key, or an error for unknown keys.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "log-level":
		return c.LogLevel, nil
	case "default-format":
		return c.DefaultFormat, nil
	case "width":
		return intString(c.Width), nil
	case "fill":
		return c.Fill, nil
	case "space":
		if c.Space == nil {
			return "", nil
		}
		return strconv.Itoa(*c.Space), nil
	case "max-length":
		return intString(c.MaxLength), nil
	default:
		return "", unknownKeyError(key)
	}
}

// SetValue validates value and assigns it to key.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "log-level":
		if !logger.IsValidLevel(value) {
			return fmt.Errorf("invalid log-level %q (use debug, info, warn, error)", value)
		}
		c.LogLevel = value
	case "default-format":
		f, err := output.ParseFormat(value)
		if err != nil {
			return err
		}
		c.DefaultFormat = f.String()
	case "width":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		c.Width = n
	case "fill":
		if _, err := text.ParseFill(value); err != nil {
			return err
		}
		c.Fill = value
	case "space":
		n, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		c.Space = &n
	case "max-length":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		c.MaxLength = n
	default:
		return unknownKeyError(key)
	}
	return nil
}

func parseNonNegative(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative (got %d)", text.ErrInvalidArgument, key, n)
	}
	return n, nil
}

// parsePositive is for keys where a stored 0 means "use the built-in
// default", so 0 cannot be set explicitly.
func parsePositive(key, value string) (int, error) {
	n, err := parseNonNegative(key, value)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0 (0 is the built-in default)", text.ErrInvalidArgument, key)
	}
	return n, nil
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
}
