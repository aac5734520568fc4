package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/cockup/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHook(t *testing.T) {
	tests := []struct {
		name   string
		hook   config.Hook
		status string
		detail string
	}{
		{"missing name", config.Hook{Command: config.Command{Args: []string{"true"}}}, "FAIL", "missing `name`"},
		{"missing command", config.Hook{Name: "x"}, "FAIL", "missing `command`"},
		{"unknown program", config.Hook{Name: "x", Command: config.Command{Args: []string{"cockup-no-such-binary"}}}, "FAIL", "not found in PATH"},
		{"no timeout", config.Hook{Name: "x", Command: config.Command{Args: []string{"true"}}}, "WARN", "no timeout"},
		{"ok", config.Hook{Name: "x", Command: config.Command{Line: "true"}, Timeout: config.Seconds(3)}, "OK", "timeout 3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := checkHook(tt.hook, config.DefaultShell)
			assert.Equal(t, tt.status, res.status)
			assert.Contains(t, res.details, tt.detail)
		})
	}
}

func TestDoctorCommand(t *testing.T) {
	t.Run("reports failures", func(t *testing.T) {
		path := writeConfig(t, testConfig)
		buf := captureOutput(t, doctorCmd)

		err := runDoctor(doctorCmd, []string{path})
		require.Error(t, err, "hook without name should fail the check")

		out := ansi.Strip(buf.String())
		for _, name := range []string{"prepare", "cleanup", "snapshot"} {
			assert.Contains(t, out, name)
		}
		assert.Contains(t, out, "missing `name`")
	})

	t.Run("passes on complete hooks", func(t *testing.T) {
		path := writeConfig(t, "hooks:\n  pre-backup:\n    - name: ok\n      command: [\"true\"]\n      timeout: 1\n")
		buf := captureOutput(t, doctorCmd)

		require.NoError(t, runDoctor(doctorCmd, []string{path}))
		assert.Contains(t, ansi.Strip(buf.String()), "All hooks look runnable")
	})

	t.Run("no hooks", func(t *testing.T) {
		path := writeConfig(t, "rules: []\n")
		buf := captureOutput(t, doctorCmd)

		require.NoError(t, runDoctor(doctorCmd, []string{path}))
		assert.Equal(t, "error: No hooks defined in the configuration.", strings.TrimSpace(ansi.Strip(buf.String())))
	})
}
