package config

import (
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("requires base url", func(t *testing.T) {
		t.Setenv("RESTAURANT_API_URL", "")
		if _, err := NewFromEnv(); err == nil {
			t.Error("expected error when RESTAURANT_API_URL is not set")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RESTAURANT_API_URL", "https://backend.example.com")
		t.Setenv("RESTAURANT_API_VERSION", "")
		t.Setenv("SESSION_PATH", "")
		t.Setenv("DATABASE_PATH", "")
		t.Setenv("POLL_INTERVAL", "")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("NewFromEnv failed: %v", err)
		}
		if cfg.APIVersion != "/api" {
			t.Errorf("APIVersion = %q, want /api", cfg.APIVersion)
		}
		if cfg.SessionPath != "data/session.json" {
			t.Errorf("SessionPath = %q", cfg.SessionPath)
		}
		if cfg.DatabasePath != "data/restaurant.db" {
			t.Errorf("DatabasePath = %q", cfg.DatabasePath)
		}
		if cfg.PollInterval != 30*time.Second {
			t.Errorf("PollInterval = %s, want 30s", cfg.PollInterval)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RESTAURANT_API_URL", "https://backend.example.com")
		t.Setenv("RESTAURANT_API_VERSION", "/api/v2")
		t.Setenv("POLL_INTERVAL", "2m")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("NewFromEnv failed: %v", err)
		}
		if cfg.APIVersion != "/api/v2" {
			t.Errorf("APIVersion = %q", cfg.APIVersion)
		}
		if cfg.PollInterval != 2*time.Minute {
			t.Errorf("PollInterval = %s, want 2m", cfg.PollInterval)
		}
	})

	t.Run("rejects bad poll interval", func(t *testing.T) {
		t.Setenv("RESTAURANT_API_URL", "https://backend.example.com")
		t.Setenv("POLL_INTERVAL", "soon")
		if _, err := NewFromEnv(); err == nil {
			t.Error("expected error for unparseable POLL_INTERVAL")
		}
	})
}
