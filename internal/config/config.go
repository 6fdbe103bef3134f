package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DBPath   string `env:"WORKLOG_DB" envDefault:"~/.worklog/worklog.db"`
	PageSize int    `env:"WORKLOG_PAGE_SIZE" envDefault:"10"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault reads configuration, falling back to the built-in
// defaults when the environment cannot be parsed.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return &Config{DBPath: "~/.worklog/worklog.db", PageSize: 10}
	}
	return cfg
}
