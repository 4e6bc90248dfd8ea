// Package testutil provides shared test helpers for setting up notes directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/nn/internal/storage"
)

// TestNotes creates a temporary notes directory with a storage provider.
func TestNotes(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteNote writes content to name under dir and returns the file path.
func WriteNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}
