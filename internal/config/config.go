package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/session-context/internal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. SESSION_CONTEXT_MAX_SESSIONS
const EnvPrefix = "SESSION_CONTEXT"

// Config controls how the hook selects and renders sessions
type Config struct {
	// Prompt prefixes that trigger session context injection
	Triggers []string `yaml:"triggers" mapstructure:"triggers"`

	// Maximum number of sessions listed; 0 lists all
	MaxSessions int `yaml:"max_sessions" mapstructure:"max_sessions"`

	// One of error, warn, info, debug
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Triggers:    append([]string(nil), internal.DefaultTriggers...),
		MaxSessions: 0,
		LogLevel:    "warn",
	}
}

// GlobalConfigPath returns the path to the per-user config file
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".session-context.yaml")
}

// ProjectConfigPath returns the path to the config file inside root's session tree
func ProjectConfigPath(root string) string {
	return filepath.Join(root, internal.SessionDirName, "config.yaml")
}

// Load merges the global config, the project config under root and then
// explicitPath (if set) over the defaults. Environment variables win over
// files. Missing or malformed global and project files are skipped; an
// explicit file must exist and parse.
func Load(root, explicitPath string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("triggers", defaults.Triggers)
	v.SetDefault("max_sessions", defaults.MaxSessions)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, path := range []string{GlobalConfigPath(), ProjectConfigPath(root)} {
		if path == "" {
			continue
		}
		if err := mergeFile(v, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			internal.LogWarn("Skipping config %s: %v", path, err)
		}
	}

	if explicitPath != "" {
		if err := mergeFile(v, explicitPath); err != nil {
			return defaults, fmt.Errorf("failed to load config %s: %w", explicitPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return defaults, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v.SetConfigFile(path)
	return v.MergeInConfig()
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
