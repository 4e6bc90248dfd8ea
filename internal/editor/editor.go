// Package editor runs the configured external editor on a note.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Launcher opens a file for interactive editing and blocks until done.
type Launcher interface {
	Open(ctx context.Context, path string) error
}

// Command launches an editor program as a child process.
type Command struct {
	Name string
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New parses an editor command line such as "nano" or "code --wait".
// The child inherits the standard streams of the current process.
func New(command string) (*Command, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor: empty command")
	}
	return &Command{
		Name:   fields[0],
		Args:   fields[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

// Open runs the editor with path as its last argument and waits for it to
// exit. The exit status is ignored; only a failure to start is an error.
func (c *Command) Open(ctx context.Context, path string) error {
	args := append(append([]string{}, c.Args...), path)
	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("editor: run %s: %w", c.Name, err)
	}
	return nil
}
