package hooks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/cockup/internal/config"
	"github.com/mark3labs/cockup/internal/console"
)

// newTestRunner returns a runner whose console and hook output are captured.
func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var consoleOut, hookOut bytes.Buffer
	r := NewRunner(RunnerConfig{
		Console: console.New(&consoleOut),
		Stdout:  &hookOut,
		Stderr:  &hookOut,
		WorkDir: t.TempDir(),
	})
	return r, &consoleOut, &hookOut
}

// lines returns the console output without styling, one entry per line.
func lines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(ansi.Strip(buf.String()), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func hook(name string, args ...string) config.Hook {
	return config.Hook{Name: name, Command: config.Command{Args: args}}
}

func names(list []config.Hook) []string {
	out := make([]string, len(list))
	for i, h := range list {
		out[i] = h.Name
	}
	return out
}
