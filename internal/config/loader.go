// Package config provides configuration management for promptvault.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. ~/.config/promptvault/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "promptvault", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	expandPath(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPath(cfg)
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: PROMPTVAULT_<SECTION>_<FIELD>
//
// Examples:
// - PROMPTVAULT_STORAGE_DATABASE_PATH overrides [storage].database_path
// - PROMPTVAULT_OUTPUT_COLOR overrides [output].color
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyString("PROMPTVAULT_STORAGE_DATABASE_PATH", &c.Storage.DatabasePath)
	applyBool("PROMPTVAULT_OUTPUT_COLOR", &c.Output.Color)
	applyString("PROMPTVAULT_OUTPUT_TIME_FORMAT", &c.Output.TimeFormat)
	applyString("PROMPTVAULT_EDITOR_COMMAND", &c.Editor.Command)
}

// expandPath expands ~ to the home directory in the database path.
func expandPath(c *Config) {
	if strings.HasPrefix(c.Storage.DatabasePath, "~/") || c.Storage.DatabasePath == "~" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			c.Storage.DatabasePath = filepath.Join(homeDir, strings.TrimPrefix(c.Storage.DatabasePath, "~/"))
		}
	}
}
