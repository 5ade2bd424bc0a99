package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all sandbox configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Operation history
	History HistoryConfig `yaml:"history"`

	// Tutorial rendering
	Tutorial TutorialConfig `yaml:"tutorial"`
}

// HistoryConfig configures the operation history store.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"` // relative paths resolve against the workspace
	Limit        int    `yaml:"limit"`         // default rows shown by `history`
}

// TutorialConfig configures how lessons are rendered.
type TutorialConfig struct {
	WordWrap int    `yaml:"word_wrap"`
	Style    string `yaml:"style"` // auto, dark, light, notty
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "sandbox",
		Version: "0.3.0",

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},

		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: filepath.Join(".sandbox", "history.db"),
			Limit:        20,
		},

		Tutorial: TutorialConfig{
			WordWrap: 80,
			Style:    "auto",
		},
	}
}

// DefaultPath returns the config file location inside a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".sandbox", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file means defaults
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("SANDBOX_DB"); path != "" {
		c.History.DatabasePath = path
	}
	if level := os.Getenv("SANDBOX_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate checks the configuration for values the commands cannot use.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console", "text":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	if c.History.Enabled && c.History.DatabasePath == "" {
		return fmt.Errorf("history enabled but database_path is empty")
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history limit must be >= 0, got %d", c.History.Limit)
	}
	if c.Tutorial.WordWrap < 0 {
		return fmt.Errorf("tutorial word_wrap must be >= 0, got %d", c.Tutorial.WordWrap)
	}
	return nil
}

// ResolveDatabasePath returns the history database path, joined to workspace
// when relative.
func (c *Config) ResolveDatabasePath(workspace string) string {
	p := c.History.DatabasePath
	if filepath.IsAbs(p) || workspace == "" {
		return p
	}
	return filepath.Join(workspace, p)
}
