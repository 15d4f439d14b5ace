package config

import (
	"os"
	"path/filepath"
	"testing"

	pverrors "github.com/chazuruo/promptvault/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Storage.DatabasePath == "" {
		t.Error("default database path should not be empty")
	}
	if !cfg.Output.Color {
		t.Error("color should default to on")
	}
	if cfg.Output.TimeFormat == "" {
		t.Error("default time format should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DatabasePath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty database path should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Output.TimeFormat = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty time format should fail validation")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Storage.DatabasePath = filepath.Join(dir, "vault.db")
	cfg.Output.Color = false

	if err := cfg.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Storage.DatabasePath != cfg.Storage.DatabasePath {
		t.Errorf("database path = %q, want %q", loaded.Storage.DatabasePath, cfg.Storage.DatabasePath)
	}
	if loaded.Output.Color {
		t.Error("color should round-trip as false")
	}
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.toml")

	if err := DefaultConfig().WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load() after WriteFile error = %v", err)
	}
}

func TestWriteFile_FailureIsConfigError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write blocker file: %v", err)
	}

	// Parent "directory" is a regular file, so MkdirAll must fail.
	err := DefaultConfig().WriteFile(filepath.Join(blocker, "config.toml"))
	if err == nil {
		t.Fatal("WriteFile() expected error, got nil")
	}
	ce, ok := pverrors.AsConfigError(err)
	if !ok {
		t.Fatalf("WriteFile() error = %T, want *ConfigError", err)
	}
	if ce.Path == "" {
		t.Error("ConfigError.Path should carry the target path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PROMPTVAULT_STORAGE_DATABASE_PATH", "/tmp/override.db")
	t.Setenv("PROMPTVAULT_OUTPUT_COLOR", "false")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Storage.DatabasePath != "/tmp/override.db" {
		t.Errorf("database path = %q, want env override", cfg.Storage.DatabasePath)
	}
	if cfg.Output.Color {
		t.Error("color should be overridden to false")
	}
}

func TestEditorCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.Command = "nano"
	if got := cfg.EditorCommand(); got != "nano" {
		t.Errorf("EditorCommand() = %q, want nano", got)
	}

	cfg.Editor.Command = ""
	os.Unsetenv("EDITOR")
	t.Setenv("EDITOR", "hx")
	if got := cfg.EditorCommand(); got != "hx" {
		t.Errorf("EditorCommand() = %q, want hx", got)
	}
}
