package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/cache"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// RateLimiter enforces a fixed-window per-IP request limit backed by Redis.
// When Redis is unreachable the request is allowed through, availability wins
// over strictness here.
type RateLimiter struct {
	redis  *cache.RedisClient
	window time.Duration
}

// NewRateLimiter creates a new RateLimiter.
func NewRateLimiter(redis *cache.RedisClient, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redis, window: window}
}

// Limit returns a middleware allowing at most max requests per window per
// client IP. The name separates independent counters, e.g. "api" and "auth".
func (r *RateLimiter) Limit(name string, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := r.redis.Incr(c.Request.Context(), key, r.window)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count > int64(max) {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Çok fazla istek gönderildi, lütfen daha sonra tekrar deneyin")
			c.Abort()
			return
		}
		c.Next()
	}
}
