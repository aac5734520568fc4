package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestConfigCommand(t *testing.T) {
	t.Run("runs without error when no settings exist", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tempDir)
		t.Chdir(tempDir)
		buf := captureOutput(t, configCmd)

		if err := runConfig(configCmd, []string{}); err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		out := ansi.Strip(buf.String())
		if !strings.Contains(out, "not found") {
			t.Errorf("Expected missing settings files to be reported:\n%s", out)
		}
		if !strings.Contains(out, "/bin/sh") {
			t.Errorf("Expected default shell in output:\n%s", out)
		}
	})

	t.Run("displays global settings when they exist", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tempDir)
		t.Chdir(tempDir)

		configDir := filepath.Join(tempDir, "cockup")
		_ = os.MkdirAll(configDir, 0755)
		globalPath := filepath.Join(configDir, "cockup.yml")
		_ = os.WriteFile(globalPath, []byte("log_level: debug\nshell: /bin/bash\n"), 0644)

		buf := captureOutput(t, configCmd)
		if err := runConfig(configCmd, []string{}); err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		out := ansi.Strip(buf.String())
		if !strings.Contains(out, "/bin/bash") {
			t.Errorf("Expected global shell in output:\n%s", out)
		}
	})

	t.Run("shows environment overrides", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tempDir)
		t.Chdir(tempDir)
		t.Setenv("COCKUP_LOG_LEVEL", "warn")

		buf := captureOutput(t, configCmd)
		if err := runConfig(configCmd, []string{}); err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		out := ansi.Strip(buf.String())
		if !strings.Contains(out, "Environment Overrides") || !strings.Contains(out, "COCKUP_LOG_LEVEL") {
			t.Errorf("Expected env override table:\n%s", out)
		}
	})
}
