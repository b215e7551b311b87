// Package config reads and writes the tally configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat tally configuration
type Config struct {
	Version         string `json:"version"`
	DataDir         string `json:"data_dir,omitempty"`         // overrides ~/.tally
	DefaultPriority string `json:"default_priority,omitempty"` // task priority when the flag is omitted
}

// DefaultConfig returns the configuration written by `tally init`.
func DefaultConfig() *Config {
	return &Config{
		Version:         "1",
		DefaultPriority: "low",
	}
}

// configPath returns ~/.tally/config.json.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tally", "config.json"), nil
}

// LoadConfig reads ~/.tally/config.json.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json under ~/.tally.
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create .tally dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DataDir resolves the directory holding the database. A data_dir set
// in the config wins; otherwise ~/.tally. A missing config file is not
// an error here since `tally init` is optional.
func DataDir() (string, error) {
	if cfg, err := LoadConfig(); err == nil && cfg.DataDir != "" {
		return cfg.DataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tally"), nil
}
