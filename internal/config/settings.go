package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/mark3labs/cockup/internal/errors"
	"github.com/spf13/viper"
)

// DefaultShell runs hook commands given as a single string.
const DefaultShell = "/bin/sh"

const envPrefix = "COCKUP"

// Settings holds tool settings, independent of any backup configuration.
type Settings struct {
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error
	LogFile  string `mapstructure:"log_file"`  // empty disables logging
	Shell    string `mapstructure:"shell"`     // shell for string commands
}

// SettingKeys lists every settings key in display order.
var SettingKeys = []string{"log_level", "log_file", "shell"}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

// GlobalPath returns the path of the per-user settings file.
func GlobalPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cockup", "cockup.yml")
}

// ProjectPath returns the path of the project settings file.
func ProjectPath() string {
	return ".cockup.yml"
}

// LoadSettings resolves settings from, highest first: COCKUP_* environment
// variables, the project file, the global file and defaults.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("shell", DefaultShell)

	for _, path := range []string{GlobalPath(), ProjectPath()} {
		if path == "" || !fileExists(path) {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings from %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}

// Validate checks the settings for values the runner cannot use.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewValidationError("log_level", s.LogLevel, "must be one of debug, info, warn, error")
	}
	if strings.TrimSpace(s.Shell) == "" {
		return apperrors.NewValidationError("shell", s.Shell, "must not be empty")
	}
	return nil
}

// Value returns the setting named key as a display string.
func (s *Settings) Value(key string) string {
	switch key {
	case "log_level":
		return s.LogLevel
	case "log_file":
		return s.LogFile
	case "shell":
		return s.Shell
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
