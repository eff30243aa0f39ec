package config

import (
	"github.com/sdejongh/configdiff/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Diff    DiffConfig    `yaml:"diff"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DiffConfig holds comparison-related settings
type DiffConfig struct {
	IgnoreOrder bool `yaml:"ignore_order"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format string `yaml:"format"` // "text", "json" or "yaml"
	Color  string `yaml:"color"`  // "auto", "always" or "never"
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Diff: DiffConfig{
			IgnoreOrder: false,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'text', 'json' or 'yaml'",
		}
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.Output.Color] {
		return &models.ValidationError{
			Field:   "output.color",
			Message: "must be 'auto', 'always' or 'never'",
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn' or 'error'",
		}
	}

	return nil
}
