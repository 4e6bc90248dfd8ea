// Package prompt asks the user yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Prompt reads answers from in and writes questions to out.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompt.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Confirm prints question and reads one line. Only "y" or "yes" (any case)
// count as agreement; closed input counts as no.
func (p *Prompt) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return false, fmt.Errorf("prompt: write: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("prompt: read: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
