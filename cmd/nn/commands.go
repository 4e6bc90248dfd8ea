package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/starford/nn/internal"
	"github.com/starford/nn/internal/prompt"
)

type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(s *streams) *cli.Command {
	return &cli.Command{
		Name:      "nn",
		Usage:     "A normal notes tool: one Markdown file per day",
		Writer:    s.stdout,
		ErrWriter: s.stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q", cmd.Args().First())
			}
			app, err := s.newApp(cmd)
			if err != nil {
				return err
			}
			return app.Edit(ctx, "")
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.notes_cli/config.yaml",
				Sources:     cli.EnvVars("NN_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "edit",
				Usage:     "Open the note for a date (default today) in the editor",
				ArgsUsage: "[YYYY-MM-DD]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() > 1 {
						return fmt.Errorf("edit: expected at most one date")
					}
					app, err := s.newApp(cmd)
					if err != nil {
						return err
					}
					return app.Edit(ctx, cmd.Args().First())
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a note",
				ArgsUsage: "<date>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("delete: expected exactly one date")
					}
					app, err := s.newApp(cmd)
					if err != nil {
						return err
					}
					return app.Delete(ctx, cmd.Args().First())
				},
			},
			{
				Name:  "list",
				Usage: "List all notes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := s.newApp(cmd)
					if err != nil {
						return err
					}
					return app.List(ctx)
				},
			},
			{
				Name:      "search",
				Usage:     "Search all notes for a string",
				ArgsUsage: "<query>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("search: expected exactly one query")
					}
					app, err := s.newApp(cmd)
					if err != nil {
						return err
					}
					return app.Search(ctx, cmd.Args().First())
				},
			},
			{
				Name:  "tags",
				Usage: "Show all tags used in notes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := s.newApp(cmd)
					if err != nil {
						return err
					}
					return app.Tags(ctx)
				},
			},
		},
	}
}

// newApp runs the config bootstrap and builds the application for one command.
func (s *streams) newApp(cmd *cli.Command) (*internal.App, error) {
	root := cmd.Root()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	configPath := root.String("config")
	if configPath == "" {
		configPath = internal.DefaultConfigPath(home)
	}

	b := &internal.Bootstrap{
		Path:     configPath,
		Home:     home,
		Defaults: internal.NewDefaultConfig(home),
		Confirm:  prompt.New(s.stdin, s.stdout),
		Stderr:   s.stderr,
	}
	cfg, outcome, err := b.LoadOrInitialize()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if root.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := internal.NewLogger(s.stderr, level)
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("config_path", configPath),
		slog.String("outcome", outcome.String()),
		slog.String("notes_dir", cfg.NotesDir),
		slog.String("editor", cfg.Editor),
		slog.String("log_level", cfg.LogLevel.String()))

	return internal.New(
		internal.WithConfig(cfg),
		internal.WithOutput(s.stdout, s.stderr),
		internal.WithLogger(logger),
	)
}
