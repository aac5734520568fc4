package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupted is returned when the user aborts a prompt.
var ErrInterrupted = errors.New("prompt interrupted")

// lineReader is the part of *readline.Instance the prompt uses.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// Prompt reads answers from the terminal.
type Prompt struct {
	rl     lineReader
	out    io.Writer
	closed bool
}

// NewPrompt creates a terminal prompt on stdin/stdout.
func NewPrompt() (*Prompt, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Prompt{rl: rl, out: os.Stdout}, nil
}

// Close releases the terminal. Calling it again is a no-op.
func (p *Prompt) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.rl.Close()
}

// AskIntOnce is AskInt followed by Close. readline keeps reading stdin
// until it is closed, so use this when a command that needs the terminal
// runs right after the answer.
func (p *Prompt) AskIntOnce(label string) (int, error) {
	defer p.Close()
	return p.AskInt(label)
}

// AskInt blocks until the user enters an integer. Invalid input is
// reported and asked again; interrupt and EOF end the prompt.
func (p *Prompt) AskInt(label string) (int, error) {
	p.rl.SetPrompt(label + ": ")
	for {
		line, err := p.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return 0, ErrInterrupted
			}
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Error: '%s' is not a valid integer.\n", line)
			continue
		}
		return n, nil
	}
}
