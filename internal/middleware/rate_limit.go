package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/utils"
	"golang.org/x/time/rate"
)

const (
	clientTTL     = 3 * time.Minute
	sweepInterval = time.Minute
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter 按客户端 IP 的令牌桶限流
type ipRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*rateLimitClient
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients:   make(map[string]*rateLimitClient),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// 顺带清理长时间未出现的客户端
	if now.Sub(l.lastSweep) > sweepInterval {
		for key, client := range l.clients {
			if now.Sub(client.lastSeen) > clientTTL {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	client, ok := l.clients[ip]
	if !ok {
		client = &rateLimitClient{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// RateLimit 按 IP 限流，rps <= 0 时不限流
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := newIPRateLimiter(rps, burst)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			utils.AbortFail(c, "Rate limit exceeded")
			return
		}
		c.Next()
	}
}
