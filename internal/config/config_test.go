package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MediastackKey == "" || cfg.OMDbKey == "" {
		t.Error("bundled default API keys must be present")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if !strings.Contains(cfg.ConfigDir, "dashmix") {
		t.Errorf("expected a dashmix config dir default, got %q", cfg.ConfigDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DASHMIX_MEDIASTACK_KEY", "my-key")
	t.Setenv("DASHMIX_OMDB_URL", "http://localhost:9999")
	t.Setenv("DASHMIX_CONFIG_DIR", "/tmp/dashmix-test")
	t.Setenv("DASHMIX_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MediastackKey != "my-key" {
		t.Errorf("expected overridden key, got %q", cfg.MediastackKey)
	}
	if cfg.OMDbURL != "http://localhost:9999" {
		t.Errorf("expected overridden URL, got %q", cfg.OMDbURL)
	}
	if cfg.ConfigDir != "/tmp/dashmix-test" {
		t.Errorf("expected overridden config dir, got %q", cfg.ConfigDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected overridden log level, got %q", cfg.LogLevel)
	}
}
