// internal/config/config.go

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog"
)

// Config holds the CLI configuration, read from environment variables.
type Config struct {
	// Path to a JSON or YAML rule file; empty means the built-in defaults.
	RulesPath string `env:"AC_RULES_PATH" envDefault:""`

	LogLevel string `env:"AC_LOG_LEVEL" envDefault:"info"`

	// Pretty renders the decision as human-readable text instead of JSON.
	Pretty bool `env:"AC_PRETTY" envDefault:"false"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Level returns the configured zerolog level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
