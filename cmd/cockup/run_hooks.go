package main

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/cockup/internal/config"
	apperrors "github.com/mark3labs/cockup/internal/errors"
	"github.com/mark3labs/cockup/internal/hooks"
	"github.com/spf13/cobra"
)

var runHooksFlags struct {
	phase  string
	rule   int
	strict bool
}

var runHooksCmd = &cobra.Command{
	Use:   "run-hooks CONFIG",
	Short: "Run the hooks of one phase or rule",
	Long: `Run every hook of a global phase, or the on-start then on-end hooks of
one rule, in declared order. Failing hooks are reported and the remaining
hooks still run.

Phases: pre-backup, post-backup, pre-restore, post-restore.
Rules are numbered from 1 in configuration order.`,
	Args: cobra.ExactArgs(1),
	RunE: runRunHooks,
}

func init() {
	runHooksCmd.Flags().StringVarP(&runHooksFlags.phase, "phase", "p", "", "Global phase to run")
	runHooksCmd.Flags().IntVarP(&runHooksFlags.rule, "rule", "r", 0, "Rule whose hooks to run (1-based)")
	runHooksCmd.Flags().BoolVar(&runHooksFlags.strict, "strict", false, "Exit with an error if any hook did not succeed")
	runHooksCmd.MarkFlagsMutuallyExclusive("phase", "rule")
}

func runRunHooks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	var list []config.Hook
	switch {
	case runHooksFlags.rule != 0:
		if runHooksFlags.rule < 1 || runHooksFlags.rule > len(cfg.Rules) {
			return apperrors.NewValidationError("rule", strconv.Itoa(runHooksFlags.rule),
				fmt.Sprintf("must be between 1 and %d", len(cfg.Rules)))
		}
		list = hooks.RuleHooks(cfg.Rules[runHooksFlags.rule-1])
	case runHooksFlags.phase != "":
		phase, err := config.ParsePhase(runHooksFlags.phase)
		if err != nil {
			return err
		}
		list = cfg.Hooks.Phase(phase)
	default:
		return fmt.Errorf("one of --phase or --rule is required: %w", apperrors.ErrInvalidInput)
	}

	summary := newRunner(cmd).Run(commandContext(cmd), list)
	if runHooksFlags.strict {
		return summary.Err()
	}
	return nil
}
