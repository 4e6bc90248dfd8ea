// Package storage defines the notes directory abstraction.
package storage

// Provider is the interface for note file operations.
type Provider interface {
	// Root returns the notes directory as configured.
	Root() string
	// Path resolves a date string to the note file path under Root.
	Path(date string) string
	// Entries returns the path of every entry directly under Root, sorted by name.
	Entries() ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Create writes the default heading to path unless the file already exists.
	// It reports whether a new file was written.
	Create(path string) (bool, error)
	// Delete removes the note for date.
	Delete(date string) error
}
