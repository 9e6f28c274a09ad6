package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"todoweb/internal/metrics"
)

// RateLimiter is a fixed-window limiter keyed by client IP. Windows live in
// a go-cache instance so stale entries expire on their own.
type RateLimiter struct {
	cache    *cache.Cache
	logger   *zap.Logger
	metrics  *metrics.AppMetrics
	requests int
	window   time.Duration
	mutex    sync.Mutex
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func NewRateLimiter(logger *zap.Logger, appMetrics *metrics.AppMetrics, requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		cache:    cache.New(5*time.Minute, 10*time.Minute),
		logger:   logger,
		metrics:  appMetrics,
		requests: requests,
		window:   window,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed, resetTime := rl.allow(key)

		if !allowed {
			path := c.FullPath()

			if path == "" {
				path = c.Request.URL.Path
			}

			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(path)
			}

			rl.logger.Warn("rate limit exceeded",
				zap.String("client_ip", key),
				zap.String("path", path),
			)

			retryAfter := int(time.Until(resetTime).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) (bool, time.Time) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()

	if v, found := rl.cache.Get(key); found {
		entry := v.(*rateLimitEntry)

		if now.Before(entry.ResetTime) {
			if entry.Count >= rl.requests {
				return false, entry.ResetTime
			}

			entry.Count++
			return true, entry.ResetTime
		}
	}

	entry := &rateLimitEntry{Count: 1, ResetTime: now.Add(rl.window)}
	rl.cache.Set(key, entry, rl.window)

	return true, entry.ResetTime
}
