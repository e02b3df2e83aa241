package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hwangtab/artcontract/pkg/logger"
)

// RateLimiter counts requests per caller over a fixed window. The
// wizard re-evaluates on every field change, so the budget has to
// absorb bursts of PATCHes from a single editing session.
type RateLimiter struct {
	mu        sync.Mutex
	counts    map[string]int
	lastReset time.Time
	rate      int
	window    time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts:    make(map[string]int),
		lastReset: time.Now(),
		rate:      rate,
		window:    window,
	}
}

// Allow records one request for the key and reports whether it is
// within budget.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if time.Since(r.lastReset) > r.window {
		r.counts = make(map[string]int)
		r.lastReset = time.Now()
	}

	if r.counts[key] >= r.rate {
		return false
	}
	r.counts[key] = r.counts[key] + 1
	return true
}

// RateLimit budgets requests per authenticated tenant, so one studio
// hammering the evaluator cannot starve the others. Requests without a
// tenant (the login route) fall back to the client IP.
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(rate, window)

	return func(c *gin.Context) {
		key := GetTenant(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			logger.Warn(c.Request.Context(), "rate limit exceeded",
				"limit_key", key,
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
