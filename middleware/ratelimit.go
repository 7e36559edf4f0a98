package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter pairs a limiter with its last access time so stale
// entries can be dropped.
type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// AuthRateLimiter throttles the unauthenticated auth endpoints per
// client IP to slow down credential stuffing.
type AuthRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
	stopCh   chan struct{}
}

// NewAuthRateLimiter creates a limiter allowing ratePerMinute requests
// per IP with the given burst, and starts a background sweep of idle
// entries.
func NewAuthRateLimiter(ratePerMinute float64, burst int) *AuthRateLimiter {
	rl := &AuthRateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     rate.Limit(ratePerMinute / 60.0),
		burst:    burst,
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop terminates the cleanup goroutine.
func (rl *AuthRateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware returns the gin handler enforcing the limit.
func (rl *AuthRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Muitas tentativas, tente novamente mais tarde",
			})
			return
		}
		c.Next()
	}
}

func (rl *AuthRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = time.Now()
	return entry.limiter.Allow()
}

func (rl *AuthRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for ip, entry := range rl.limiters {
				if entry.lastAccess.Before(cutoff) {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}
