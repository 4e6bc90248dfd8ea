package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/nn/internal/apperr"
	"github.com/starford/nn/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // notes directory, kept exactly as configured
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	if root == "" {
		return nil, fmt.Errorf("storage: empty root")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", root)
	}
	return &FS{root: root}, nil
}

// Root returns the notes directory.
func (f *FS) Root() string {
	return f.root
}

// Path returns root/date.md. The result is not cleaned or made absolute.
func (f *FS) Path(date string) string {
	return f.join(date + models.Ext)
}

func (f *FS) join(name string) string {
	if strings.HasSuffix(f.root, string(os.PathSeparator)) {
		return f.root + name
	}
	return f.root + string(os.PathSeparator) + name
}

// Entries lists root non-recursively. os.ReadDir already sorts by filename.
func (f *FS) Entries() ([]string, error) {
	des, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	out := make([]string, 0, len(des))
	for _, d := range des {
		out = append(out, f.join(d.Name()))
	}
	return out, nil
}

// Read returns the raw bytes of a file.
func (f *FS) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Create writes DefaultContent(path) if nothing exists at path yet.
func (f *FS) Create(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("storage: stat %s: %w", path, err)
	}
	if err := writeAtomic(path, DefaultContent(path)); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the note for date. A missing note yields apperr.ErrNotFound.
func (f *FS) Delete(date string) error {
	if err := checkDate(date); err != nil {
		return err
	}
	path := f.Path(date)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: delete %s: %w", path, apperr.ErrNotFound)
		}
		return fmt.Errorf("storage: delete %s: %w", path, err)
	}
	return nil
}

// DefaultContent is the heading written into a freshly created note.
func DefaultContent(path string) []byte {
	return []byte("# " + filepath.Base(path) + "\n\n")
}

// checkDate rejects date strings that would resolve outside the notes directory.
func checkDate(date string) error {
	if date == "" || date == "." || date == ".." || strings.ContainsAny(date, `/\`) {
		return fmt.Errorf("storage: %q: %w", date, apperr.ErrInvalidDate)
	}
	return nil
}

// writeAtomic writes content: tmp file → fsync → rename.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".nn-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("storage: chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
