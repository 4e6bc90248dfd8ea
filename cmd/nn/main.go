package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/starford/nn/internal/apperr"
)

func main() {
	cmd := newRootCommand(&streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, apperr.ErrAborted) {
			slog.Error("application error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
