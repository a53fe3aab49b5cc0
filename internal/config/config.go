// Package config provides configuration loading and management.
package config

import (
	"path"

	"github.com/rustlay/cli/internal/templates"
)

const (
	// DefaultConfigFile is the config file looked up in the working directory.
	DefaultConfigFile = "rustlay.toml"

	// DefaultTemplateDir is where config init exports the bundled templates.
	DefaultTemplateDir = "templates"

	// EnvConfig names the environment variable holding the config file path.
	EnvConfig = "RUSTLAY_CONFIG"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" toml:"timestamps,omitempty"`
}

// Config represents the rustlay configuration file.
type Config struct {
	// Templates maps logical template names to template file paths.
	// Relative paths resolve against the config file's directory.
	Templates map[string]string `mapstructure:"templates" toml:"templates"`

	// Log contains logging-related settings.
	Log *LogConfig `mapstructure:"log" toml:"log,omitempty"`
}

// DefaultConfig returns a Config declaring every logical template under templateDir.
// Used by `rustlay config init` to generate the initial config file.
func DefaultConfig(templateDir string) *Config {
	entries := make(map[string]string, len(templates.LogicalNames()))
	for _, name := range templates.LogicalNames() {
		entries[name] = path.Join(templateDir, name+".rs")
	}
	return &Config{Templates: entries}
}

// Timestamps returns the configured timestamp preference, or nil when unset.
func (c *Config) Timestamps() *bool {
	if c == nil || c.Log == nil {
		return nil
	}
	return c.Log.Timestamps
}
