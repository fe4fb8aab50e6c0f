package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/pkg/redis"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests allowed per window per client IP
	Requests int
	// Window length
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// DefaultLoginRateLimit limits credential endpoints to 20 attempts per minute per IP.
func DefaultLoginRateLimit() RateLimitConfig {
	return RateLimitConfig{
		Requests:  20,
		Window:    time.Minute,
		KeyPrefix: "ratelimit:login:",
	}
}

// RateLimit creates a fixed-window rate limiting middleware backed by Redis.
// When the cache is unavailable the limiter fails open: requests pass through
// rather than being rejected on infrastructure failure.
func RateLimit(client *redis.Client, config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !client.Available() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := config.KeyPrefix + c.ClientIP()

		count, err := client.Raw().Incr(ctx, key).Result()
		if err != nil {
			client.Observe(err)
			c.Next()
			return
		}
		if count == 1 {
			client.Raw().Expire(ctx, key, config.Window)
		}

		remaining := int64(config.Requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(config.Requests) {
			retryAfter := int(config.Window.Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Error("TOO_MANY_REQUESTS",
				"Rate limit exceeded. Please retry after "+strconv.Itoa(retryAfter)+" second(s)."))
			return
		}

		c.Next()
	}
}
