// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/nn/internal/apperr"
	"github.com/starford/nn/internal/checksum"
	"github.com/starford/nn/internal/editor"
	"github.com/starford/nn/internal/models"
	"github.com/starford/nn/internal/noteservice"
	"github.com/starford/nn/internal/storage"
)

// App runs one command against the notes directory.
type App struct {
	application
	svc *noteservice.Service
}

// New builds an App from the given options. A config is required.
func New(opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		opt(&app.application)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.logger == nil {
		app.logger = slog.Default()
	}
	if app.launcher == nil {
		cmd, err := editor.New(app.config.Editor)
		if err != nil {
			return nil, err
		}
		app.launcher = cmd
	}

	store, err := storage.NewFS(app.config.NotesDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	app.svc = noteservice.NewService(store, app.logger)
	return app, nil
}

// NewLogger returns a text logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Today returns the current local date as YYYY-MM-DD.
func (a *App) Today() string {
	return a.now().Format(models.DateLayout)
}

// Edit opens the note for date in the editor, creating it first if needed.
// An empty date means today.
func (a *App) Edit(ctx context.Context, date string) error {
	if date == "" {
		date = a.Today()
	} else if err := validation.Validate(date, validation.Date(models.DateLayout)); err != nil {
		return fmt.Errorf("%w %q: %v", apperr.ErrInvalidDate, date, err)
	}

	path, created, err := a.svc.EnsureNote(ctx, date)
	if err != nil {
		return err
	}
	before, err := checksum.File(path)
	if err != nil {
		return err
	}

	a.logger.Debug("opening editor",
		slog.String("path", path),
		slog.Bool("created", created))
	if err := a.launcher.Open(ctx, path); err != nil {
		return err
	}

	// The editor may have deleted or renamed the file; that is not an error.
	after, err := checksum.File(path)
	if err != nil {
		a.logger.Debug("note gone after edit", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}
	a.logger.Debug("editor closed",
		slog.String("path", path),
		slog.Bool("changed", before != after))
	return nil
}

// Delete removes the note for date, reporting the result on stderr.
func (a *App) Delete(ctx context.Context, date string) error {
	deleted, err := a.svc.DeleteNote(ctx, date)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(a.stderr, "Deleted note for %s\n", date)
	} else {
		fmt.Fprintf(a.stderr, "No note found for %s\n", date)
	}
	return nil
}

// List prints the path of every entry in the notes directory.
func (a *App) List(ctx context.Context) error {
	paths, err := a.svc.ListNotes(ctx)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(a.stdout, p)
	}
	return nil
}

// Search prints every note containing query, followed by its content.
func (a *App) Search(ctx context.Context, query string) error {
	notes, err := a.svc.Search(ctx, query)
	if err != nil {
		return err
	}
	for _, n := range notes {
		fmt.Fprintf(a.stdout, "%s:\n%s\n", n.Path, n.Content)
	}
	return nil
}

// Tags prints each distinct tag once.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.svc.Tags(ctx)
	if err != nil {
		return err
	}
	for _, t := range tags {
		fmt.Fprintln(a.stdout, t)
	}
	return nil
}
