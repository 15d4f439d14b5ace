// Package app provides high-level application logic for promptvault commands.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazuruo/promptvault/internal/config"
	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/store/sqlite"
)

// OpenStore opens the SQLite store at the configured path, creating
// the parent directory if needed.
func OpenStore(cfg *config.Config) (store.Store, error) {
	path := cfg.Storage.DatabasePath
	if path == "" {
		return nil, fmt.Errorf("no database path configured")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// LoadConfig loads the config from an explicit path, or from the
// default location with fallback to defaults.
func LoadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadWithDefaults()
}
