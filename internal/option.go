package internal

import (
	"io"
	"log/slog"
	"time"

	"github.com/starford/nn/internal/editor"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	stdout   io.Writer
	stderr   io.Writer
	launcher editor.Launcher
	now      func() time.Time
	logger   *slog.Logger
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithOutput sets where command output and status messages are written.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *application) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithLauncher replaces the editor built from the configured command.
func WithLauncher(l editor.Launcher) Option {
	return func(a *application) {
		a.launcher = l
	}
}

// WithClock sets the source of "today".
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}
