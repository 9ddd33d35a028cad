// Package config loads the watcher's runtime knobs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for every knob that has one.
const (
	DefaultPollIntervalSeconds = 30
	DefaultGitpodHost          = "app.gitpod.io"
	DefaultLogLevel            = "info"
)

// DefaultPollInterval is the pause between polls.
const DefaultPollInterval = DefaultPollIntervalSeconds * time.Second

// Config holds all configuration for the watcher
type Config struct {
	// PollInterval is the pause between polls.
	PollInterval time.Duration

	// GitpodHost is the environment-management API host.
	GitpodHost string

	// EnvironmentID pins the rename target; empty means resolve at startup.
	EnvironmentID string

	// CredentialsPath locates the management API token file; empty means the
	// default location under the home directory.
	CredentialsPath string

	// LogLevel is debug, info, warn or error.
	LogLevel string
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		PollInterval:    time.Duration(getEnvInt("POLL_INTERVAL", DefaultPollIntervalSeconds)) * time.Second,
		GitpodHost:      getEnv("GITPOD_HOST", DefaultGitpodHost),
		CredentialsPath: os.Getenv("GITPOD_CREDENTIALS"),
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration after all sources have been applied.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be greater than zero, got %s", c.PollInterval)
	}
	if c.GitpodHost == "" {
		return fmt.Errorf("gitpod host must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// getEnv gets environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets environment variable as int with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
