// Package config provides configuration management for promptvault.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level configuration struct for promptvault.
// It contains all configuration sections as embedded structs.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Output  OutputConfig  `toml:"output"`
	Editor  EditorConfig  `toml:"editor"`
}

// StorageConfig contains persistence settings.
type StorageConfig struct {
	// DatabasePath is the path to the SQLite database file.
	DatabasePath string `toml:"database_path"`
}

// OutputConfig contains terminal output settings.
type OutputConfig struct {
	// Color enables styled output.
	Color bool `toml:"color"`

	// TimeFormat is the layout used when printing timestamps.
	TimeFormat string `toml:"time_format"`
}

// EditorConfig contains editor settings.
type EditorConfig struct {
	// Command is the editor command to use (if unset, uses $EDITOR).
	Command string `toml:"command"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			DatabasePath: filepath.Join(homeDir, ".local", "share", "promptvault", "promptvault.db"),
		},
		Output: OutputConfig{
			Color:      true,
			TimeFormat: "2006-01-02 15:04",
		},
		Editor: EditorConfig{
			Command: "",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Storage.DatabasePath == "" {
		return fmt.Errorf("storage.database_path is required")
	}
	if c.Output.TimeFormat == "" {
		return fmt.Errorf("output.time_format cannot be empty")
	}
	return nil
}

// EditorCommand resolves the editor to use: config value first, then
// $EDITOR, then vi.
func (c *Config) EditorCommand() string {
	if c.Editor.Command != "" {
		return c.Editor.Command
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return "vi"
}
