package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv                   string
	LogLevel                 slog.Level
	ApiServicePort           string
	PostgreSQLHost           string
	PostgreSQLPort           int64
	PostgreSQLUser           string
	PostgreSQLPassword       string
	PostgreSQLDatabase       string
	RedisHost                string
	RedisPort                int64
	RedisPassword            string
	RedisDatabase            int64
	RequestTimeout           int64 // Per-request deadline in seconds
	RateLimitPerMinute       int64 // Write requests per client per minute; <= 0 disables limiting
	EnableGlobalErrorLogging bool
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:                   getEnv("APP_ENV", "development"),                 // Default development
		LogLevel:                 getLogLevel(),                                    // Default INFO
		ApiServicePort:           getEnv("API_SERVICE_PORT", "8080"),               // Default 8080
		PostgreSQLHost:           getEnv("POSTGRESQL_HOST", "db"),                  // Default db
		PostgreSQLPort:           getEnvAsInt64("POSTGRESQL_PORT", 5432),           // Default 5432
		PostgreSQLUser:           getEnv("POSTGRESQL_USER", "coursedesk_user"),     // Default user
		PostgreSQLPassword:       getEnv("POSTGRESQL_PASSWORD", "coursedesk_pass"), // Default password
		PostgreSQLDatabase:       getEnv("POSTGRESQL_DATABASE", "coursedesk_db"),   // Default database name
		RedisHost:                getEnv("REDIS_HOST", "redis"),                    // Default redis
		RedisPort:                getEnvAsInt64("REDIS_PORT", 6379),                // Default 6379
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),                     // Default empty
		RedisDatabase:            getEnvAsInt64("REDIS_DATABASE", 0),               // Default 0
		RequestTimeout:           getEnvAsInt64("REQUEST_TIMEOUT", 30),             // Default 30 seconds
		RateLimitPerMinute:       getEnvAsInt64("RATE_LIMIT_PER_MINUTE", 60),       // Default 60 writes/minute
		EnableGlobalErrorLogging: getEnv("ENABLE_GLOBAL_ERROR_LOGGING", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
