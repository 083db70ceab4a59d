// Package config provides configuration loading and management for the
// enumkit CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/enumkit/enum"
)

// Format identifies a CLI rendering format.
type Format string

const (
	// FormatTable renders aligned plain-text columns.
	FormatTable Format = "table"
	// FormatJSON renders an ordered JSON array of name/value pairs.
	FormatJSON Format = "json"
	// FormatYAML renders an ordered YAML mapping.
	FormatYAML Format = "yaml"
)

// Formats is the declared rendering format vocabulary. Validation of the
// config's own fields runs through it.
var Formats = enum.Declare("config.format",
	enum.V("TABLE", FormatTable),
	enum.V("JSON", FormatJSON),
	enum.V("YAML", FormatYAML),
)

// LogLevels is the declared log level vocabulary.
var LogLevels = enum.Declare("config.log_level",
	enum.V("DEBUG", "debug"),
	enum.V("INFO", "info"),
	enum.V("WARN", "warn"),
	enum.V("ERROR", "error"),
)

func init() {
	enum.MustRegister(Formats)
	enum.MustRegister(LogLevels)
}

// Config represents the complete enumkit configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig configures how vocabularies are rendered
type OutputConfig struct {
	// Format is the default rendering format (table, json, yaml)
	Format string `yaml:"format"`
}

// LogConfig configures CLI diagnostics
type LogConfig struct {
	// Level is the minimum level logged to stderr (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: string(FormatTable),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !Formats.IsValue(c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got %q", Formats, c.Output.Format)
	}
	if !LogLevels.IsValue(c.Log.Level) {
		return fmt.Errorf("log.level must be one of %s, got %q", LogLevels, c.Log.Level)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
