// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazuruo/promptvault/internal/store"
	"github.com/chazuruo/promptvault/internal/store/sqlite"
)

// OpenSQLite opens a SQLite store backed by a file in a temporary
// directory. The database is deleted when the test completes.
func OpenSQLite(t *testing.T) store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}

	return st
}

// WriteDocument writes content to a temporary file and returns the path.
// The file is automatically deleted when the test completes.
func WriteDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "templates.yaml")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write document file: %v", err)
	}

	return path
}
