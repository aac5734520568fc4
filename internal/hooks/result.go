package hooks

import (
	"errors"
	"fmt"

	"github.com/mark3labs/cockup/internal/config"
	apperrors "github.com/mark3labs/cockup/internal/errors"
)

// Status is the outcome of one hook.
type Status int

const (
	StatusSucceeded Status = iota
	StatusSkipped          // missing name or command, never executed
	StatusTimedOut
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusSkipped:
		return "skipped"
	case StatusTimedOut:
		return "timed out"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records what happened to the hook at 1-based position Index.
type Result struct {
	Index  int
	Hook   config.Hook
	Status Status
	Err    error
}

// Message returns the console error line for r, or "" on success.
func (r Result) Message() string {
	switch r.Status {
	case StatusSkipped:
		field := "name"
		var ve *apperrors.ValidationError
		if errors.As(r.Err, &ve) {
			field = ve.Field
		}
		return fmt.Sprintf("Hook %d missing `%s`, skipping...", r.Index, field)
	case StatusTimedOut:
		timeout := "0"
		if r.Hook.Timeout != nil {
			timeout = r.Hook.Timeout.String()
		}
		return fmt.Sprintf("Command `%s` timed out after %s seconds.", r.Hook.Name, timeout)
	case StatusFailed:
		return fmt.Sprintf("Error executing command `%s`: %v.", r.Hook.Name, r.Err)
	}
	return ""
}

// Summary is the tally of one Run.
type Summary struct {
	Results []Result
}

// Total is the number of hooks handed to Run, skipped ones included.
func (s Summary) Total() int {
	return len(s.Results)
}

// Succeeded counts hooks that ran and exited cleanly.
func (s Summary) Succeeded() int {
	return s.count(func(r Result) bool { return r.Status == StatusSucceeded })
}

// Attempted counts hooks that were actually executed.
func (s Summary) Attempted() int {
	return s.count(func(r Result) bool { return r.Status != StatusSkipped })
}

func (s Summary) count(match func(Result) bool) int {
	n := 0
	for _, r := range s.Results {
		if match(r) {
			n++
		}
	}
	return n
}

// String returns the summary line printed after a run.
func (s Summary) String() string {
	noun := "hooks"
	if s.Total() == 1 {
		noun = "hook"
	}
	return fmt.Sprintf("Completed %d/%d %s successfully.", s.Succeeded(), s.Total(), noun)
}

// Err aggregates every hook that did not succeed, or returns nil.
func (s Summary) Err() error {
	var errs []error
	for _, r := range s.Results {
		if r.Status == StatusSucceeded {
			continue
		}
		err := r.Err
		if err == nil {
			err = errors.New(r.Status.String())
		}
		errs = append(errs, fmt.Errorf("hook %d (%s): %w", r.Index, r.Hook.Name, err))
	}
	return apperrors.NewMultiError(errs).ErrorOrNil()
}
