package main

import (
	"errors"
	"fmt"

	"github.com/mark3labs/cockup/internal/config"
	"github.com/mark3labs/cockup/internal/console"
	apperrors "github.com/mark3labs/cockup/internal/errors"
	"github.com/mark3labs/cockup/internal/hooks"
	"github.com/spf13/cobra"
)

var hookFlags struct {
	name string
}

var hookCmd = &cobra.Command{
	Use:   "hook CONFIG",
	Short: "Select and run a single hook",
	Long: `List every hook in the configuration (rule hooks first, then global
hooks) and run the one you select by number.

Use --name to run the hooks with that name without prompting.`,
	Args: cobra.ExactArgs(1),
	RunE: runHook,
}

func init() {
	hookCmd.Flags().StringVarP(&hookFlags.name, "name", "n", "", "Run the hooks with this name instead of prompting")
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	runner := newRunner(cmd)
	ctx := commandContext(cmd)

	if hookFlags.name != "" {
		matched := hooks.FindByName(hooks.Flatten(cfg), hookFlags.name)
		if len(matched) == 0 {
			return fmt.Errorf("hook %q: %w", hookFlags.name, apperrors.ErrNotFound)
		}
		runner.Run(ctx, matched)
		return nil
	}

	prompt, err := console.NewPrompt()
	if err != nil {
		return err
	}
	defer prompt.Close()

	_, err = runner.SelectAndRun(ctx, cfg, oneShotPrompt{prompt})
	if errors.Is(err, console.ErrInterrupted) {
		return nil
	}
	return err
}

// oneShotPrompt hands the terminal back before the selected hook starts.
type oneShotPrompt struct {
	*console.Prompt
}

func (p oneShotPrompt) AskInt(label string) (int, error) {
	return p.AskIntOnce(label)
}
