package hooks

import (
	"context"
	"fmt"

	"github.com/mark3labs/cockup/internal/config"
)

// unnamed stands in for a missing name in the hook listing.
const unnamed = "(unnamed)"

// Prompter asks the user for an integer.
type Prompter interface {
	AskInt(label string) (int, error)
}

// SelectAndRun lists every hook in cfg, asks the user to pick one by its
// 1-based index and runs it alone. It returns nil when nothing ran: no
// hooks are defined, or the choice is out of range. Only prompt failures
// are returned as errors.
func (r *Runner) SelectAndRun(ctx context.Context, cfg *config.Config, prompter Prompter) (*Summary, error) {
	all := Flatten(cfg)
	if len(all) == 0 {
		r.console.Error("No hooks defined in the configuration.")
		return nil, nil
	}

	r.console.Point("Available hooks:")
	for i, hook := range all {
		name := hook.Name
		if name == "" {
			name = unnamed
		}
		r.console.Print(r.console.Bold(fmt.Sprintf("[%d] ", i+1)) + name)
	}

	choice, err := prompter.AskInt("Select a hook")
	if err != nil {
		return nil, err
	}
	if choice < 1 || choice > len(all) {
		return nil, nil
	}

	summary := r.Run(ctx, all[choice-1:choice])
	return &summary, nil
}
