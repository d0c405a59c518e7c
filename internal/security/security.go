package security

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Config holds security middleware configuration
type Config struct {
	MaxRequestsPerMin int           `json:"max_requests_per_min"`
	AllowedOrigins    []string      `json:"allowed_origins"`
	RequestTimeout    time.Duration `json:"request_timeout"`
}

// DefaultConfig returns secure defaults
func DefaultConfig() Config {
	return Config{
		MaxRequestsPerMin: 120,
		AllowedOrigins:    []string{"*"},
		RequestTimeout:    10 * time.Second,
	}
}

// Middleware provides per-IP rate limiting, security headers and request
// timeouts for the chart endpoints.
type Middleware struct {
	config Config

	mu         sync.Mutex
	ipLimiters map[string]*rate.Limiter
}

// NewMiddleware creates a new security middleware instance
func NewMiddleware(config Config) *Middleware {
	return &Middleware{
		config:     config,
		ipLimiters: make(map[string]*rate.Limiter),
	}
}

// RateLimitByIP implements per-IP rate limiting
func (m *Middleware) RateLimitByIP(c *gin.Context) {
	clientIP := c.ClientIP()

	m.mu.Lock()
	limiter, exists := m.ipLimiters[clientIP]
	if !exists {
		rps := rate.Limit(float64(m.config.MaxRequestsPerMin) / 60.0)
		burst := m.config.MaxRequestsPerMin / 2
		if burst < 5 {
			burst = 5
		}
		limiter = rate.NewLimiter(rps, burst)
		m.ipLimiters[clientIP] = limiter
	}
	m.mu.Unlock()

	if !limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       "rate limit exceeded for IP",
			"retry_after": "60",
		})
		c.Abort()
		return
	}

	c.Next()
}

// SecurityHeaders adds security headers to responses
func (m *Middleware) SecurityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "1; mode=block")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

	if c.Request.TLS != nil {
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	}

	c.Next()
}

// RequestTimeout enforces a hard deadline on request handling
func (m *Middleware) RequestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), m.config.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
