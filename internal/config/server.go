package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the settings the serve command needs beyond flags.
type ServerConfig struct {
	Port         int
	SeedPath     string // optional JSON seed file; empty means built-in seed
	GeminiAPIKey string // optional; boost endpoint is disabled without it
	CORSOrigin   string
}

// NewServerConfig creates a server configuration from environment
// variables: PORT (default 8080), SEED_FILE, GEMINI_API_KEY, CORS_ORIGIN
// (default "*").
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:         8080,
		SeedPath:     os.Getenv("SEED_FILE"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		CORSOrigin:   os.Getenv("CORS_ORIGIN"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got: %d", cfg.Port)
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}
	return cfg, nil
}
