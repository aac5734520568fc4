package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/cockup/internal/config"
	"github.com/mark3labs/cockup/internal/console"
	"github.com/mark3labs/cockup/internal/hooks"
	"github.com/mark3labs/cockup/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// settings is resolved before every command runs.
var settings = &config.Settings{LogLevel: "info", Shell: config.DefaultShell}

func main() {
	// Hooks run in their own process group, so interrupts are forwarded
	// through the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cockup",
	Short: "Back up and restore application settings from a YAML configuration",
	Long: `cockup backs up and restores application settings described by a YAML
configuration. Each rule can run hooks when it starts and ends, and global
hooks run before and after a whole backup or restore.

The hook commands in this binary list, select and run those hooks.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(runHooksCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	settings = s

	if err := logger.Init(logger.Config{Level: s.LogLevel, File: s.LogFile}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("cockup %s: running %s", version, cmd.CommandPath())
	return nil
}

// newRunner builds a hook runner printing to the command's output.
func newRunner(cmd *cobra.Command) *hooks.Runner {
	return hooks.NewRunner(hooks.RunnerConfig{
		Console: console.New(cmd.OutOrStdout()),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Shell:   settings.Shell,
	})
}

// commandContext returns the command's context, or Background when the
// command was invoked without Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
