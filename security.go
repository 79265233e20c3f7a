package main

import (
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/metrics"
)

// recoverPanic logs a recovered panic instead of crashing the process.
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

// RateLimiter is a per-client token bucket. Each client may make rate
// requests per interval, refilled continuously.
type RateLimiter struct {
	rate     int
	interval time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket

	stopCh   chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup goroutine.
// Call Close to stop it.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		rate:     rate,
		interval: interval,
		buckets:  make(map[string]*bucket),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether the client may make a request now, and consumes a
// token if so.
func (rl *RateLimiter) Allow(client string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[client]
	if !ok {
		b = &bucket{tokens: float64(rl.rate), last: now}
		rl.buckets[client] = b
	} else {
		elapsed := now.Sub(b.last)
		b.tokens += float64(rl.rate) * elapsed.Seconds() / rl.interval.Seconds()
		if b.tokens > float64(rl.rate) {
			b.tokens = float64(rl.rate)
		}
		b.last = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

// cleanupLoop drops buckets that have refilled completely; they behave the
// same as a missing bucket.
func (rl *RateLimiter) cleanupLoop() {
	period := rl.interval
	if period < time.Minute {
		period = time.Minute
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for client, b := range rl.buckets {
				if now.Sub(b.last) >= rl.interval {
					delete(rl.buckets, client)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// SecurityConfig configures the HTTP transport protections.
type SecurityConfig struct {
	RateLimit   int   // requests per minute per client IP; 0 disables
	MaxBodySize int64 // bytes; 0 disables

	// TrustProxy takes the client IP from X-Forwarded-For or X-Real-IP.
	// Enable only behind a reverse proxy that overwrites those headers.
	TrustProxy bool
}

// SecurityMiddleware applies rate limiting and request body limits in front
// of the MCP HTTP handler.
type SecurityMiddleware struct {
	next    http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *RateLimiter
}

// NewSecurityMiddleware wraps next with the protections in config.
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		next:   next,
		logger: logger,
		config: config,
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer recoverPanic(sm.logger, "http "+r.Method+" "+r.URL.Path)

	if sm.limiter != nil {
		ip := clientIP(r)
		if !sm.limiter.Allow(ip) {
			metrics.RateLimitRejections.Inc()
			sm.logger.Warn("Rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
	}

	if sm.config.MaxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, sm.config.MaxBodySize)
	}

	sm.next.ServeHTTP(w, r)
}

// Close releases the rate limiter.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}

// clientIP returns the host part of the remote address. Forwarding headers
// only reach it through chi's RealIP, which the router installs when
// TrustProxy is set.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
