package internal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/starford/nn/internal/apperr"
	"github.com/starford/nn/internal/prompt"
	pkgconfig "github.com/starford/nn/pkg/config"
)

// Outcome records how LoadOrInitialize produced its configuration.
type Outcome int

const (
	// OutcomeLoaded means the existing config file was used.
	OutcomeLoaded Outcome = iota
	// OutcomeCreated means no config file existed and defaults were written.
	OutcomeCreated
	// OutcomeDefaults means the config file was broken and the user chose
	// in-memory defaults. Nothing was written.
	OutcomeDefaults
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeCreated:
		return "created"
	case OutcomeDefaults:
		return "defaults"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

const continuePrompt = "Continue with default config? [y/n]"

// Bootstrap locates, loads or initializes the configuration record.
type Bootstrap struct {
	Path     string    // config file location
	Home     string    // used to expand "~/" in notes_dir
	Defaults *Config   // used on first run and on accepted fallback
	Confirm  prompt.Confirmer
	Stderr   io.Writer // receives the parse error before the question
}

// LoadOrInitialize returns the configuration to run with. On first run it
// persists the defaults. When the file exists but cannot be parsed, the
// error is shown and the user decides between the defaults and
// apperr.ErrAborted. In every non-error case the notes directory exists on
// return.
func (b *Bootstrap) LoadOrInitialize() (*Config, Outcome, error) {
	if b.Defaults == nil {
		return nil, 0, fmt.Errorf("config: defaults are required")
	}

	_, err := os.Stat(b.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg := *b.Defaults
		if err := pkgconfig.Save(b.Path, &cfg); err != nil {
			return nil, 0, err
		}
		return b.finish(&cfg, OutcomeCreated)
	case err != nil:
		return nil, 0, fmt.Errorf("config: stat %s: %w", b.Path, err)
	}

	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("config: read %s: %w", b.Path, err)
	}

	cfg := &Config{LogLevel: b.Defaults.LogLevel}
	if parseErr := pkgconfig.Parse(b.Path, data, cfg); parseErr != nil {
		if b.Stderr != nil {
			fmt.Fprintf(b.Stderr, "Error loading nn config: %v\n", parseErr)
		}
		if b.Confirm == nil {
			return nil, 0, fmt.Errorf("%w: %v", apperr.ErrAborted, parseErr)
		}
		ok, err := b.Confirm.Confirm(continuePrompt)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, apperr.ErrAborted
		}
		fallback := *b.Defaults
		return b.finish(&fallback, OutcomeDefaults)
	}
	return b.finish(cfg, OutcomeLoaded)
}

func (b *Bootstrap) finish(cfg *Config, o Outcome) (*Config, Outcome, error) {
	cfg.NotesDir = expandHome(cfg.NotesDir, b.Home)
	if err := os.MkdirAll(cfg.NotesDir, 0o755); err != nil {
		return nil, 0, fmt.Errorf("create notes dir: %w", err)
	}
	return cfg, o, nil
}
