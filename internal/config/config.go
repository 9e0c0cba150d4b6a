// Package config loads the command line defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the gdcore command. Flags override them.
type Config struct {
	LogLevel string `env:"GDCORE_LOG_LEVEL" envDefault:"info"`
	Project  string `env:"GDCORE_PROJECT"   envDefault:"game.json"`
	// Format forces the output format of fmt; empty keeps the extension's.
	Format string `env:"GDCORE_FORMAT"`
	// Assets is offered to ${ASSETS} in resource paths.
	Assets string `env:"GDCORE_ASSETS"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
