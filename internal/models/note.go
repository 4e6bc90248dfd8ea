// Package models defines the domain types for nn.
package models

// DateLayout is the layout of the date string that keys every note.
const DateLayout = "2006-01-02"

// Ext is the file extension of note files.
const Ext = ".md"

// Note is a single note file read from the notes directory.
type Note struct {
	Path    string
	Content string
}
