// Package cli provides tests for CLI commands.
package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazuruo/promptvault/internal/config"
)

// TestList_MissingDatabasePath verifies that list surfaces a clear
// error when the config has no database path.
func TestList_MissingDatabasePath(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Storage.DatabasePath = ""

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := cfg.WriteFile(configPath); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	opts := &ListOptions{ConfigPath: configPath}

	err := runList(opts)
	if err == nil {
		t.Fatal("runList() expected error for missing database path, got nil")
	}
	if !strings.Contains(err.Error(), "database_path") {
		t.Errorf("error message should mention the database path, got: %s", err)
	}
}

// TestList_InvalidFormat verifies the format flag is validated.
func TestList_InvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Storage.DatabasePath = filepath.Join(tmpDir, "vault.db")

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := cfg.WriteFile(configPath); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	opts := &ListOptions{ConfigPath: configPath, Format: "xml"}

	err := runList(opts)
	if err == nil {
		t.Fatal("runList() expected error for invalid format, got nil")
	}
	if !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("error message should mention the invalid format, got: %s", err)
	}
}
