package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTimeout = 10 * time.Minute

// RateLimiterConfig holds the configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterData holds one token bucket per client IP.
type rateLimiterData struct {
	mu        sync.Mutex
	config    RateLimiterConfig
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

func (d *rateLimiterData) allow(ip string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if now.Sub(d.lastSweep) > limiterIdleTimeout {
		for key, cl := range d.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTimeout {
				delete(d.clients, key)
			}
		}
		d.lastSweep = now
	}

	cl, ok := d.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(d.config.RequestsPerSecond), d.config.Burst)}
		d.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// NewRateLimiterMiddleware limits each client IP to the configured rate.
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	data := &rateLimiterData{
		config:    config,
		clients:   make(map[string]*clientLimiter),
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if !data.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
