package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

const testConfig = `rules:
  - from: ~/.config/app
    to: app
    on-start:
      - name: prepare
        command: ["true"]
        timeout: 5
    on-end:
      - name: cleanup
        command: "exit 2"
hooks:
  pre-backup:
    - name: snapshot
      command: ["true"]
  post-backup:
    - name: prepare
      command: ["sh", "-c", "exit 0"]
  pre-restore:
    - command: ["true"]
`

// writeConfig writes content to a temporary configuration file.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cockup.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// captureOutput points cmd at a buffer and returns it.
func captureOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	return &buf
}

func outputLines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(ansi.Strip(buf.String()), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestVersionCommand(t *testing.T) {
	buf := captureOutput(t, versionCmd)
	versionCmd.Run(versionCmd, nil)

	if !strings.HasPrefix(buf.String(), "cockup dev\n") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}

func TestRootRegistersCommands(t *testing.T) {
	want := []string{"hook", "run-hooks", "doctor", "config", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
