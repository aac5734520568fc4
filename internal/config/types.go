package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	apperrors "github.com/mark3labs/cockup/internal/errors"
	"gopkg.in/yaml.v3"
)

// Command is either a shell line or an argument vector.
//
//	command: "tar czf out.tgz ~/notes"
//	command: ["brew", "bundle", "dump", "--force"]
type Command struct {
	Line string   // run through the shell
	Args []string // executed directly
}

// UnmarshalYAML accepts a string or a sequence of strings.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = Command{}
		if value.ShortTag() == "!!null" {
			return nil
		}
		return value.Decode(&c.Line)
	case yaml.SequenceNode:
		*c = Command{}
		return value.Decode(&c.Args)
	default:
		return fmt.Errorf("line %d: command must be a string or a list of strings", value.Line)
	}
}

// IsZero reports whether no command was given.
func (c Command) IsZero() bool {
	return strings.TrimSpace(c.Line) == "" && len(c.Args) == 0
}

// Argv returns the program and arguments to execute. Shell lines are
// wrapped as `<shell> -c <line>`.
func (c Command) Argv(shell string) []string {
	if len(c.Args) > 0 {
		return c.Args
	}
	if c.IsZero() {
		return nil
	}
	if shell == "" {
		shell = DefaultShell
	}
	return []string{shell, "-c", c.Line}
}

func (c Command) String() string {
	if len(c.Args) > 0 {
		return strings.Join(c.Args, " ")
	}
	return c.Line
}

// Duration is a timeout given as seconds (5, 0.5) or a duration string ("1m30s").
type Duration time.Duration

// UnmarshalYAML accepts a number of seconds or a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timeout must be a number of seconds or a duration", value.Line)
	}

	var secs float64
	if err := value.Decode(&secs); err == nil {
		parsed, err := fromSeconds(secs)
		if err != nil {
			return apperrors.NewValidationError("timeout", value.Value, err.Error())
		}
		*d = parsed
		return nil
	}

	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid timeout %q: %w", value.Line, value.Value, err)
	}
	if parsed < 0 {
		return apperrors.NewValidationError("timeout", value.Value, "must not be negative")
	}
	*d = Duration(parsed)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String renders d as a plain number of seconds.
func (d Duration) String() string {
	return apperrors.FormatSeconds(time.Duration(d))
}

// maxSeconds is the largest number of seconds a time.Duration can hold.
const maxSeconds = float64(math.MaxInt64 / int64(time.Second))

func fromSeconds(secs float64) (Duration, error) {
	switch {
	case math.IsNaN(secs):
		return 0, fmt.Errorf("must be a number")
	case secs < 0:
		return 0, fmt.Errorf("must not be negative")
	case secs > maxSeconds:
		return 0, fmt.Errorf("must be at most %.0f seconds", maxSeconds)
	}
	return Duration(time.Duration(secs * float64(time.Second))), nil
}

// Seconds builds a Duration pointer from seconds, for literals in code and
// tests. It panics if secs is not a valid timeout.
func Seconds(secs float64) *Duration {
	d, err := fromSeconds(secs)
	if err != nil {
		panic(fmt.Sprintf("config.Seconds(%v): %v", secs, err))
	}
	return &d
}
