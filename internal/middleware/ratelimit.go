package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pivotchat-backend/pkg/logger"
	"pivotchat-backend/pkg/response"
)

// RateLimiter implements Redis-based per-IP rate limiting with a fixed
// window. Translation previews fire on every debounce tick, so limits are
// set per client, not per message.
type RateLimiter struct {
	redisClient *redis.Client
	requests    int
	window      time.Duration
}

// NewRateLimiter creates a new rate limiter.
// requests: maximum number of requests allowed per window
// window: time window for the rate limit (e.g., 1 minute)
func NewRateLimiter(redisClient *redis.Client, requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		requests:    requests,
		window:      window,
	}
}

// Middleware returns a Gin middleware for rate limiting.
// Fail-open: if Redis is unavailable the request passes through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.redisClient == nil {
			c.Next()
			return
		}

		identifier := "ip:" + c.ClientIP()
		allowed, remaining, resetTime, err := rl.checkRateLimit(c.Request.Context(), identifier)
		if err != nil {
			logger.Warn("Rate limit check failed, allowing request",
				zap.String("identifier", identifier),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime, 10))

		if !allowed {
			response.Error(c, 429, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimit counts the request against a fixed window in Redis.
func (rl *RateLimiter) checkRateLimit(ctx context.Context, identifier string) (bool, int, int64, error) {
	key := fmt.Sprintf("ratelimit:%s", identifier)

	count, err := rl.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, 0, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	// First hit in the window sets the expiry.
	if count == 1 {
		if err := rl.redisClient.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, 0, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	remaining := rl.requests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetTime := time.Now().Add(rl.window).Unix()

	return count <= int64(rl.requests), remaining, resetTime, nil
}
