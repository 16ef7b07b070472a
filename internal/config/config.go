package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the configuration for the client.
type Config struct {
	// Backend
	BaseURL    string
	APIVersion string

	// Local state
	SessionPath  string
	DatabasePath string

	// Order watcher
	PollInterval time.Duration
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	baseURL := os.Getenv("RESTAURANT_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("RESTAURANT_API_URL environment variable not set")
	}

	apiVersion := os.Getenv("RESTAURANT_API_VERSION")
	if apiVersion == "" {
		apiVersion = "/api"
	}

	sessionPath := os.Getenv("SESSION_PATH")
	if sessionPath == "" {
		sessionPath = "data/session.json"
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "data/restaurant.db"
	}

	pollInterval := 30 * time.Second
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL %q: %w", v, err)
		}
		pollInterval = d
	}

	return &Config{
		BaseURL:      baseURL,
		APIVersion:   apiVersion,
		SessionPath:  sessionPath,
		DatabasePath: databasePath,
		PollInterval: pollInterval,
	}, nil
}
