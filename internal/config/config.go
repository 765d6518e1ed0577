// Package config loads Guardian Coach settings.
//
// Precedence, lowest to highest: defaults, the optional
// .claude/guardian-coach.yaml settings file in the working directory,
// environment variables. Loading never fails: unreadable or malformed
// settings fall back to defaults so a broken config file cannot block
// tool calls.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the per-project settings file under .claude/.
const SettingsFileName = "guardian-coach.yaml"

// EnvCoaching toggles the Bash coaching rule set. Any value other than
// "1" disables coaching; path correction stays active.
const EnvCoaching = "GUARDIAN_COACH_COACHING"

// DefaultMaxContextFiles caps how many per-session task-context files are
// kept before the oldest are pruned.
const DefaultMaxContextFiles = 10

// Config holds the effective settings for one hook invocation.
type Config struct {
	// CoachingEnabled gates the Bash coaching rules.
	CoachingEnabled bool `yaml:"coaching_enabled"`

	// DecisionLog enables the structured decision log under
	// .claude/guardian-coach/.
	DecisionLog bool `yaml:"decision_log"`

	// MaxContextFiles bounds the task-context directory.
	MaxContextFiles int `yaml:"max_context_files"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CoachingEnabled: true,
		DecisionLog:     true,
		MaxContextFiles: DefaultMaxContextFiles,
	}
}

// Load resolves the effective settings for workDir. An empty workDir
// skips the settings file and applies defaults plus environment.
func Load(workDir string) *Config {
	cfg := Default()

	if workDir != "" {
		if data, err := os.ReadFile(filepath.Join(workDir, ".claude", SettingsFileName)); err == nil {
			// Unknown keys and partial files are fine; absent fields keep
			// their defaults. A file that does not parse is ignored.
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	// A set variable with any value other than "1" disables coaching,
	// including an explicitly empty value.
	if v, ok := os.LookupEnv(EnvCoaching); ok {
		cfg.CoachingEnabled = v == "1"
	}

	if cfg.MaxContextFiles <= 0 {
		cfg.MaxContextFiles = DefaultMaxContextFiles
	}

	return cfg
}
