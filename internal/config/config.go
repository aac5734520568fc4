// Package config loads the cockup backup configuration and the tool settings.
package config

import (
	"fmt"
	"os"

	apperrors "github.com/mark3labs/cockup/internal/errors"
	"gopkg.in/yaml.v3"
)

// Config is the backup configuration passed on the command line.
type Config struct {
	Destination string       `yaml:"destination"`
	Rules       []Rule       `yaml:"rules"`
	Hooks       *GlobalHooks `yaml:"hooks"` // nil when the file has no hooks section
}

// Rule describes one set of files to back up and the hooks around it.
type Rule struct {
	From    string   `yaml:"from"`
	Targets []string `yaml:"targets"`
	To      string   `yaml:"to"`
	OnStart []Hook   `yaml:"on-start"`
	OnEnd   []Hook   `yaml:"on-end"`
}

// GlobalHooks are run around a whole backup or restore operation.
type GlobalHooks struct {
	PreBackup   []Hook `yaml:"pre-backup"`
	PostBackup  []Hook `yaml:"post-backup"`
	PreRestore  []Hook `yaml:"pre-restore"`
	PostRestore []Hook `yaml:"post-restore"`
}

// Hook is a named external command. Missing fields are not rejected here;
// the runner skips incomplete hooks.
type Hook struct {
	Name    string    `yaml:"name"`
	Command Command   `yaml:"command"`
	Timeout *Duration `yaml:"timeout"` // nil means no deadline
	Output  bool      `yaml:"output"`  // stream output instead of capturing it
}

// Phase names a group of global hooks.
type Phase string

const (
	PhasePreBackup   Phase = "pre-backup"
	PhasePostBackup  Phase = "post-backup"
	PhasePreRestore  Phase = "pre-restore"
	PhasePostRestore Phase = "post-restore"
)

// Phases lists the global phases in execution order.
var Phases = []Phase{PhasePreBackup, PhasePostBackup, PhasePreRestore, PhasePostRestore}

// ParsePhase validates a phase name.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if string(p) == s {
			return p, nil
		}
	}
	return "", apperrors.NewValidationError("phase", s, "must be one of pre-backup, post-backup, pre-restore, post-restore")
}

// Phase returns the hooks declared for p. It is safe to call on a nil receiver.
func (g *GlobalHooks) Phase(p Phase) []Hook {
	if g == nil {
		return nil
	}
	switch p {
	case PhasePreBackup:
		return g.PreBackup
	case PhasePostBackup:
		return g.PostBackup
	case PhasePreRestore:
		return g.PreRestore
	case PhasePostRestore:
		return g.PostRestore
	}
	return nil
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s: %w", path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
