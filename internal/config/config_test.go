package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"POLL_INTERVAL", "GITPOD_HOST", "GITPOD_CREDENTIALS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %s, want 30s", cfg.PollInterval)
	}
	if cfg.GitpodHost != "app.gitpod.io" {
		t.Errorf("GitpodHost = %q", cfg.GitpodHost)
	}
	if cfg.CredentialsPath != "" {
		t.Errorf("CredentialsPath = %q, want empty", cfg.CredentialsPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.EnvironmentID != "" {
		t.Errorf("EnvironmentID = %q, want empty", cfg.EnvironmentID)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLL_INTERVAL", "5")
	t.Setenv("GITPOD_HOST", "gitpod.example.com")
	t.Setenv("GITPOD_CREDENTIALS", "/etc/gitpod/credentials.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %s, want 5s", cfg.PollInterval)
	}
	if cfg.GitpodHost != "gitpod.example.com" {
		t.Errorf("GitpodHost = %q", cfg.GitpodHost)
	}
	if cfg.CredentialsPath != "/etc/gitpod/credentials.yaml" {
		t.Errorf("CredentialsPath = %q", cfg.CredentialsPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadIgnoresMalformedInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLL_INTERVAL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %s, want default 30s", cfg.PollInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		errContain string
	}{
		{
			name:       "zero interval",
			mutate:     func(c *Config) { c.PollInterval = 0 },
			errContain: "poll interval",
		},
		{
			name:       "negative interval",
			mutate:     func(c *Config) { c.PollInterval = -time.Second },
			errContain: "poll interval",
		},
		{
			name:       "empty host",
			mutate:     func(c *Config) { c.GitpodHost = "" },
			errContain: "gitpod host",
		},
		{
			name:       "unknown log level",
			mutate:     func(c *Config) { c.LogLevel = "verbose" },
			errContain: "log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				PollInterval: DefaultPollInterval,
				GitpodHost:   DefaultGitpodHost,
				LogLevel:     DefaultLogLevel,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContain) {
				t.Errorf("error %q does not contain %q", err, tt.errContain)
			}
		})
	}
}

func TestLoadRejectsNegativeInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLL_INTERVAL", "-10")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative interval")
	}
}
