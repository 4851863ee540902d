package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/coursedesk/coursedesk/internal/config"
)

// RateLimiter bounds how many write requests a single client may issue
// per minute, backed by Redis
type RateLimiter interface {
	// Allow reports whether the client may proceed and the current count
	Allow(ctx context.Context, clientID string) (bool, int64, error)

	// Close closes the Redis connection
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	logger *slog.Logger
}

// NewRateLimiter creates a new Redis-based rate limiter
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisRateLimiter{
		client: client,
		limit:  cfg.RateLimitPerMinute,
		logger: logger,
	}, nil
}

// minuteKey generates the Redis key for the current fixed window
// Format: rate:write:{clientID}:{YYYY-MM-DDTHH:MM}
func minuteKey(clientID string) string {
	window := time.Now().UTC().Format("2006-01-02T15:04")
	return fmt.Sprintf("rate:write:%s:%s", clientID, window)
}

func (r *redisRateLimiter) Allow(ctx context.Context, clientID string) (bool, int64, error) {
	// If limit is 0 or negative, unlimited
	if r.limit <= 0 {
		return true, 0, nil
	}

	key := minuteKey(clientID)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to count request", "error", err, "client", clientID)
		// On error, allow the request but log it
		return true, 0, err
	}

	count := incr.Val()
	return count <= r.limit, count, nil
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// NoOpRateLimiter is a rate limiter that always allows requests
// Used when Redis is not available
type NoOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a no-op rate limiter
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter - rate limiting is disabled")
	return &NoOpRateLimiter{logger: logger}
}

func (r *NoOpRateLimiter) Allow(ctx context.Context, clientID string) (bool, int64, error) {
	return true, 0, nil
}

func (r *NoOpRateLimiter) Close() error {
	return nil
}

// LimitWrites applies the rate limiter to mutating routes, keyed by client IP.
func LimitWrites(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, count, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err == nil && !allowed {
			logger.Warn("⚠️ [RateLimiter] Write rate exceeded", "client", c.ClientIP(), "count", count)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		c.Next()
	}
}
