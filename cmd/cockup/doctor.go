package main

import (
	"fmt"
	"os/exec"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/cockup/internal/config"
	"github.com/mark3labs/cockup/internal/console"
	"github.com/mark3labs/cockup/internal/hooks"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor CONFIG",
	Short: "Check the hooks of a configuration",
	Long: `Check every hook in the configuration without running it.

This command verifies that:
- each hook has a name and a command
- the program each hook runs is installed and in PATH
- each hook has a timeout (a warning otherwise)`,
	Args: cobra.ExactArgs(1),
	RunE: runDoctor,
}

type checkResult struct {
	name    string
	status  string
	details string
}

// checkHook inspects one hook without executing it.
func checkHook(h config.Hook, shell string) checkResult {
	res := checkResult{name: h.Name}
	switch {
	case h.Name == "":
		res.status = "FAIL"
		res.details = "missing `name`"
		return res
	case h.Command.IsZero():
		res.status = "FAIL"
		res.details = "missing `command`"
		return res
	}

	program := h.Command.Argv(shell)[0]
	path, err := exec.LookPath(program)
	if err != nil {
		res.status = "FAIL"
		res.details = fmt.Sprintf("%s not found in PATH", program)
		return res
	}

	if h.Timeout == nil {
		res.status = "WARN"
		res.details = path + " (no timeout)"
		return res
	}
	res.status = "OK"
	res.details = fmt.Sprintf("%s (timeout %ss)", path, h.Timeout)
	return res
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	all := hooks.Flatten(cfg)
	if len(all) == 0 {
		console.New(out).Error("No hooks defined in the configuration.")
		return nil
	}

	results := make([]checkResult, len(all))
	allOk := true
	for i, h := range all {
		results[i] = checkHook(h, settings.Shell)
		if results[i].status == "FAIL" {
			allOk = false
		}
	}

	// Build rows with status icons
	rows := make([][]string, len(results))
	for i, r := range results {
		var icon string
		switch r.status {
		case "OK":
			icon = "✓"
		case "FAIL":
			icon = "⊗"
		case "WARN":
			icon = "⊘"
		}
		rows[i] = []string{strconv.Itoa(i + 1), r.name, icon, r.details}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(console.ColorBorder)).
		Headers("#", "Hook", "Status", "Details").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().
					Foreground(console.ColorPrimary).
					Bold(true).
					Padding(0, 1)
			}

			style := lipgloss.NewStyle().Padding(0, 1)

			// Style status column with colors
			if col == 2 {
				switch results[row].status {
				case "OK":
					return style.Foreground(console.ColorSuccess)
				case "FAIL":
					return style.Foreground(console.ColorError)
				case "WARN":
					return style.Foreground(console.ColorWarning)
				}
			}

			if col <= 1 {
				return style.Foreground(console.ColorBase)
			}
			return style.Foreground(console.ColorMuted)
		})

	_, _ = lipgloss.Fprintln(out, t)

	// Summary
	_, _ = lipgloss.Fprintln(out)
	successStyle := lipgloss.NewStyle().Foreground(console.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(console.ColorError)

	if allOk {
		_, _ = lipgloss.Fprintln(out, successStyle.Render("✓ All hooks look runnable!"))
		return nil
	}
	_, _ = lipgloss.Fprintln(out, errorStyle.Render("⊗ Some hooks will be skipped or fail. Fix them in the configuration."))
	return fmt.Errorf("doctor check failed")
}
