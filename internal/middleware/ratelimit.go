package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"assetpipe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter applies a fixed-window limit per API key (falling back to
// the client IP for anonymous callers). State is in-memory, so limits are
// per process.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow

	window time.Duration
	max    int
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*rateWindow),
		window:  window,
		max:     max,
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if key == "" {
			key = c.ClientIP()
		}

		count, resetAt := rl.hit(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.max))

		if count > rl.max {
			retryAfter := int(time.Until(resetAt).Seconds()) + 1
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED",
				fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", retryAfter))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(rl.max-count))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		c.Next()
	}
}

func (rl *RateLimiter) hit(key string) (int, time.Time) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(rl.window)}
		rl.windows[key] = w
	}
	w.count++

	return w.count, w.resetAt
}
