package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/logger"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name   string
		appEnv string
	}{
		{"Development", "development"},
		{"Production", "production"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				AppEnv:   tc.appEnv,
				LogLevel: slog.LevelInfo,
			}

			log := logger.New(cfg)
			assert.NotNil(t, log)
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Debug("debug message")
	log.Info("info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
}
