package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-test-secret-of-reasonable-length-32b!")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "a-test-secret-of-reasonable-length-32b!", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "expiration defaults to 24 hours")
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-test-secret-of-reasonable-length-32b!")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-test-secret-of-reasonable-length-32b!")

	t.Setenv("JWT_EXPIRATION_HOURS", "abc")
	_, err := NewJWTConfig()
	require.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	require.Error(t, err)
}

func TestNewServerConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SEED_FILE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CORS_ORIGIN", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.SeedPath)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestNewServerConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEED_FILE", "/data/seed.json")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("CORS_ORIGIN", "https://jobs.example.com")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/data/seed.json", cfg.SeedPath)
	assert.Equal(t, "key-123", cfg.GeminiAPIKey)
	assert.Equal(t, "https://jobs.example.com", cfg.CORSOrigin)
}

func TestNewServerConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "-1", "70000"} {
		t.Setenv("PORT", port)
		_, err := NewServerConfig()
		require.Error(t, err, "PORT=%s", port)
	}
}
