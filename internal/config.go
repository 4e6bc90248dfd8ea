package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Well-known locations, relative to the user's home directory.
const (
	appDirName     = ".notes_cli"
	configFileName = "config.yaml"
	notesDirName   = "notes"
	fallbackEditor = "nano"
)

// Config represents the application configuration.
type Config struct {
	NotesDir string     `yaml:"notes_dir"`
	Editor   string     `yaml:"editor"`
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NotesDir, validation.Required),
		validation.Field(&c.Editor, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with default values for the given
// home directory. The editor defaults to $EDITOR when it is set.
func NewDefaultConfig(home string) *Config {
	editor := os.Getenv("EDITOR")
	if strings.TrimSpace(editor) == "" {
		editor = fallbackEditor
	}
	return &Config{
		NotesDir: filepath.Join(home, appDirName, notesDirName),
		Editor:   editor,
		LogLevel: slog.LevelWarn,
	}
}

// DefaultConfigPath returns ~/.notes_cli/config.yaml.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, appDirName, configFileName)
}

// expandHome replaces a leading "~/" (or a bare "~") with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
