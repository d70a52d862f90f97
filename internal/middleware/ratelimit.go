package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-IP request budget, used on the auth endpoints to
// slow down credential stuffing.
type RateLimiter struct {
	perMinute int
	mu        sync.Mutex
	clients   map[string]*clientLimiter
}

func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &RateLimiter{
		perMinute: perMinute,
		clients:   map[string]*clientLimiter{},
	}
}

// Handler is the gin middleware entry point.
func (m *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := m.getLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.Header("Retry-After", "60")
			util.Error(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *RateLimiter) getLimiter(clientIP string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cl, exists := m.clients[clientIP]; exists {
		cl.lastSeen = time.Now()
		m.gcLocked()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.perMinute)), m.perMinute)
	m.clients[clientIP] = &clientLimiter{limiter: limiter, lastSeen: time.Now()}
	m.gcLocked()
	return limiter
}

func (m *RateLimiter) gcLocked() {
	if len(m.clients) < 1000 {
		return
	}
	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, cl := range m.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}
