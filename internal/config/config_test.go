package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursedesk/coursedesk/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := config.LoadConfig()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.ApiServicePort)
	assert.Equal(t, int64(5432), cfg.PostgreSQLPort)
	assert.Equal(t, int64(30), cfg.RequestTimeout)
	assert.Equal(t, int64(60), cfg.RateLimitPerMinute)
	assert.False(t, cfg.EnableGlobalErrorLogging)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_SERVICE_PORT", "5000")
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("ENABLE_GLOBAL_ERROR_LOGGING", "true")

	cfg := config.LoadConfig()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "5000", cfg.ApiServicePort)
	assert.Equal(t, int64(5), cfg.RequestTimeout)
	assert.True(t, cfg.EnableGlobalErrorLogging)
}

func TestLoadConfig_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("POSTGRESQL_PORT", "not-a-number")

	cfg := config.LoadConfig()

	assert.Equal(t, int64(5432), cfg.PostgreSQLPort)
}
