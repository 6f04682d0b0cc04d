package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/moodloom/backend/internal/apierror"
	"github.com/moodloom/backend/internal/logger"
)

// RateLimiter provides Redis-backed fixed-window rate limiting per IP.
// Counters live in Redis so limits hold across replicas; when Redis is
// unreachable the limiter fails open.
type RateLimiter struct {
	rdb    *redis.Client
	rate   int           // requests per window
	window time.Duration // time window
	name   string        // identifier for logging and key prefix
}

// NewRateLimiter creates a new rate limiter
// rate: maximum requests allowed per window
// window: time window for rate limiting
// name: identifier for logging (e.g., "general", "export")
func NewRateLimiter(rdb *redis.Client, rate int, window time.Duration, name string) *RateLimiter {
	logger.Default().Debug("rate limiter initialized",
		logger.String("name", name),
		logger.Int("rate", rate),
		logger.Duration("window", window),
	)

	return &RateLimiter{
		rdb:    rdb,
		rate:   rate,
		window: window,
		name:   name,
	}
}

// RateLimit limits general API traffic to 300 requests per minute per IP.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return rateLimitMiddleware(NewRateLimiter(rdb, 300, time.Minute, "general"))
}

// RateLimitExport limits export downloads, which scan a full year of
// records, to 10 requests per minute per IP.
func RateLimitExport(rdb *redis.Client) gin.HandlerFunc {
	return rateLimitMiddleware(NewRateLimiter(rdb, 10, time.Minute, "export"))
}

func rateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		key := fmt.Sprintf("ratelimit:%s:%s", limiter.name, ip)
		ctx := c.Request.Context()

		count, err := limiter.rdb.Incr(ctx, key).Result()
		if err != nil {
			// Fail open rather than blocking traffic on a Redis outage.
			c.Next()
			return
		}

		if count == 1 {
			limiter.rdb.Expire(ctx, key, limiter.window)
		}

		if count > int64(limiter.rate) {
			logger.Ctx(ctx).Warn("rate limit exceeded",
				logger.String("limiter", limiter.name),
				logger.String("client_ip", ip),
				logger.Int("limit", limiter.rate),
				logger.Duration("window", limiter.window),
			)

			retryAfter := int(limiter.window.Seconds())
			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			c.Header("X-RateLimit-Remaining", "0")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewRateLimitError(requestID, retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}
