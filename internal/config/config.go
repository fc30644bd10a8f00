// Package config loads dashmix configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable. The bundled API keys are shared free-tier
// defaults; set your own to avoid their quota.
type Config struct {
	MediastackKey string `env:"DASHMIX_MEDIASTACK_KEY" envDefault:"0b1564e0524432cdd218cdf5f6bf5bb8"`
	OMDbKey       string `env:"DASHMIX_OMDB_KEY" envDefault:"d65eb1b3"`

	// Base URL overrides, used in testing and for proxies.
	MediastackURL string `env:"DASHMIX_MEDIASTACK_URL"`
	OMDbURL       string `env:"DASHMIX_OMDB_URL"`
	SocialURL     string `env:"DASHMIX_SOCIAL_URL"`

	ConfigDir string `env:"DASHMIX_CONFIG_DIR"`
	LogLevel  string `env:"DASHMIX_LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.ConfigDir == "" {
		home, _ := os.UserHomeDir()
		cfg.ConfigDir = filepath.Join(home, ".config", "dashmix")
	}
	return cfg, nil
}
