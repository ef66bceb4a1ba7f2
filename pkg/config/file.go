package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kazuma-desu/banner/pkg/logger"
)

// Config represents the entire configuration file
type Config struct {
	LogLevel      string `yaml:"log-level,omitempty"`
	DefaultFormat string `yaml:"default-format,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	Fill          string `yaml:"fill,omitempty"`
	Space         *int   `yaml:"space,omitempty"`
	MaxLength     int    `yaml:"max-length,omitempty"`
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	if envPath := os.Getenv("BANNERCONFIG"); envPath != "" {
		return envPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "banner", "config.yaml"), nil
}

// LoadConfig loads the configuration from the config file.
// A missing file yields an empty config.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	info, statErr := os.Stat(configPath)
	if os.IsNotExist(statErr) {
		return &Config{}, nil
	}
	if statErr != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, statErr)
	}

	if mode := info.Mode().Perm(); mode&0077 != 0 {
		logger.Log.Warnw("Config file permissions are wider than 0600",
			"file", configPath, "mode", fmt.Sprintf("%o", mode))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to the config file
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(configPath), 0700); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
