// Package hooks collects hooks from a backup configuration and runs them.
//
// Hooks run one at a time in list order. A hook that is incomplete, fails
// or times out is reported and counted, and the batch moves on.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/cockup/internal/config"
	apperrors "github.com/mark3labs/cockup/internal/errors"
	"github.com/mark3labs/cockup/internal/logger"
)

// Console receives progress, error and listing lines.
type Console interface {
	Print(msg string)
	Point(msg string)
	Error(msg string)
	Bold(s string) string
}

// Runner executes hooks sequentially.
type Runner struct {
	console Console
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	workDir string
	shell   string
	env     []string
}

// RunnerConfig holds configuration for creating a new Runner.
type RunnerConfig struct {
	Console Console   // Destination for progress and error lines
	Stdin   io.Reader // Inherited by every hook (default os.Stdin)
	Stdout  io.Writer // Inherited by hooks with output enabled (default os.Stdout)
	Stderr  io.Writer // Inherited by hooks with output enabled (default os.Stderr)
	WorkDir string    // Working directory for hooks (default current directory)
	Shell   string    // Shell for string commands (default /bin/sh)
	Env     []string  // Environment for hooks (default os.Environ())
}

// NewRunner creates a new Runner instance.
func NewRunner(cfg RunnerConfig) *Runner {
	r := &Runner{
		console: cfg.Console,
		stdin:   cfg.Stdin,
		stdout:  cfg.Stdout,
		stderr:  cfg.Stderr,
		workDir: cfg.WorkDir,
		shell:   cfg.Shell,
		env:     cfg.Env,
	}
	if r.stdin == nil {
		r.stdin = os.Stdin
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	if r.shell == "" {
		r.shell = config.DefaultShell
	}
	if r.env == nil {
		r.env = os.Environ()
	}
	return r
}

// Run executes list in order and prints a summary line. A failing hook
// never stops the batch and never surfaces as an error; inspect the
// returned Summary instead.
func (r *Runner) Run(ctx context.Context, list []config.Hook) Summary {
	total := len(list)
	summary := Summary{Results: make([]Result, 0, total)}

	for i, hook := range list {
		res := Result{Index: i + 1, Hook: hook}

		if err := validate(hook); err != nil {
			res.Status = StatusSkipped
			res.Err = err
		} else {
			r.console.Point(fmt.Sprintf("Running hook (%d/%d): %s", res.Index, total, hook.Name))
			logger.Debug("Running hook %q: %s", hook.Name, hook.Command)

			res.Err = apperrors.Recover(func() error {
				return r.execute(ctx, hook)
			})
			res.Status = classify(res.Err)
		}

		if msg := res.Message(); msg != "" {
			r.console.Error(msg)
		}
		logger.Debug("Hook %d/%d %q %s", res.Index, total, hook.Name, res.Status)
		summary.Results = append(summary.Results, res)
	}

	r.console.Point(summary.String())
	logger.Info("Hooks completed: %d/%d succeeded", summary.Succeeded(), summary.Total())
	return summary
}

func validate(hook config.Hook) error {
	if hook.Name == "" {
		return apperrors.NewValidationError("name", "", "missing")
	}
	if hook.Command.IsZero() {
		return apperrors.NewValidationError("command", "", "missing")
	}
	return nil
}

func classify(err error) Status {
	switch {
	case err == nil:
		return StatusSucceeded
	case isTimeout(err):
		return StatusTimedOut
	default:
		return StatusFailed
	}
}
