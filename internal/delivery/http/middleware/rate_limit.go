package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/logger"
	"github.com/studevo/Studevo/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
}

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns: [current_count, ttl_remaining]
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// LoginRateLimitConfig limits login attempts per client IP.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return perIPConfig("rl:login:", limit, window)
}

// RegisterRateLimitConfig limits registrations per client IP in a bucket separate from logins.
func RegisterRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return perIPConfig("rl:register:", limit, window)
}

func perIPConfig(prefix string, limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: prefix,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimitMiddleware counts requests in Redis. With no client it lets everything
// through, and Redis failures fail open.
func RateLimitMiddleware(client goredis.Scripter, config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || config.Limit <= 0 {
			c.Next()
			return
		}

		key := config.KeyPrefix + config.KeyFunc(c)
		count, ttl, err := checkRateLimit(c.Request.Context(), client, key, config.Window)
		if err != nil {
			logger.Log.Warnw("rate limit check failed", "key", key, "error", err)
			c.Next()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", time.Now().Add(ttl).Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(ttl / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			security.Log(security.Event{
				Type:      security.EventRateLimitTriggered,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
				Reason:    c.FullPath(),
			})

			response.Error(c, http.StatusTooManyRequests, "Too many attempts. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimit returns the request count in the current window and the TTL Redis reports for it.
func checkRateLimit(ctx context.Context, client goredis.Scripter, key string, window time.Duration) (int, time.Duration, error) {
	ttlSeconds := int(window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rateLimitScript.Run(ctx, client, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, 0, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Duration(ttl) * time.Second, nil
}
