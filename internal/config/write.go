package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
)

// WriteFile persists the config to path in TOML format, creating
// parent directories as needed. Failures surface as *errors.ConfigError
// carrying the path.
func (c *Config) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &pverrors.ConfigError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &pverrors.ConfigError{Path: path, Err: err}
	}

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return &pverrors.ConfigError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &pverrors.ConfigError{Path: path, Err: err}
	}
	return nil
}
