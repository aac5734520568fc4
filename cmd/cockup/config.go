package main

import (
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/cockup/internal/config"
	"github.com/mark3labs/cockup/internal/console"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current settings",
	Long: `Display the resolved cockup settings showing values from all sources.

Settings precedence (highest to lowest):
  1. Environment variables (COCKUP_*)
  2. Project settings (./.cockup.yml)
  3. Global settings (~/.config/cockup/cockup.yml)
  4. Defaults`,
	RunE: runConfig,
}

func styledTable(headers []string, rows [][]string, valueStyle func(row, col int) (lipgloss.Style, bool)) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(console.ColorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().
					Foreground(console.ColorPrimary).
					Bold(true).
					Padding(0, 1)
			}
			if valueStyle != nil {
				if style, ok := valueStyle(row, col); ok {
					return style
				}
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return style.Foreground(console.ColorBase)
			}
			return style.Foreground(console.ColorMuted)
		})
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	globalPath := config.GlobalPath()
	projectPath := config.ProjectPath()
	absProjectPath, err := filepath.Abs(projectPath)
	if err != nil {
		absProjectPath = projectPath
	}

	globalExists := fileExists(globalPath)
	projectExists := fileExists(projectPath)

	configRows := make([][]string, 0, len(config.SettingKeys))
	for _, key := range config.SettingKeys {
		configRows = append(configRows, []string{key, s.Value(key)})
	}

	titleStyle := lipgloss.NewStyle().Foreground(console.ColorPrimary).Bold(true)
	_, _ = lipgloss.Fprintln(out, titleStyle.Render("Settings"))
	_, _ = lipgloss.Fprintln(out, styledTable([]string{"Key", "Value"}, configRows, nil))
	_, _ = lipgloss.Fprintln(out)

	// Build settings files table
	fileRows := [][]string{}
	if globalExists {
		fileRows = append(fileRows, []string{"Global", globalPath, "✓"})
	} else {
		fileRows = append(fileRows, []string{"Global", globalPath, "not found"})
	}
	if projectExists {
		fileRows = append(fileRows, []string{"Project", absProjectPath, "✓"})
	} else {
		fileRows = append(fileRows, []string{"Project", absProjectPath, "not found"})
	}

	filesTable := styledTable([]string{"Type", "Path", "Status"}, fileRows, func(row, col int) (lipgloss.Style, bool) {
		if col != 2 {
			return lipgloss.Style{}, false
		}
		// Status column - color based on found/not found
		style := lipgloss.NewStyle().Padding(0, 1)
		if row < len(fileRows) && fileRows[row][2] == "✓" {
			return style.Foreground(console.ColorSuccess), true
		}
		return style.Foreground(console.ColorWarning), true
	})

	_, _ = lipgloss.Fprintln(out, titleStyle.Render("Settings Files"))
	_, _ = lipgloss.Fprintln(out, filesTable)

	// Show environment overrides if any
	var envRows [][]string
	for _, key := range config.SettingKeys {
		name := config.EnvName(key)
		if val := os.Getenv(name); val != "" {
			envRows = append(envRows, []string{name, val})
		}
	}

	if len(envRows) > 0 {
		_, _ = lipgloss.Fprintln(out)
		_, _ = lipgloss.Fprintln(out, titleStyle.Render("Environment Overrides"))
		_, _ = lipgloss.Fprintln(out, styledTable([]string{"Variable", "Value"}, envRows, nil))
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
