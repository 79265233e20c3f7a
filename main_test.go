package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	defer rl.Close()

	if rl == nil {
		t.Fatal("NewRateLimiter returned nil")
	}
	if rl.rate != 10 {
		t.Errorf("rate = %d, want 10", rl.rate)
	}
	if rl.interval != time.Minute {
		t.Errorf("interval = %v, want %v", rl.interval, time.Minute)
	}
	if rl.stopCh == nil {
		t.Error("stopCh should be initialized")
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)
	defer rl.Close()

	ip := "192.168.1.1"

	// First 3 requests should be allowed
	for i := 0; i < 3; i++ {
		if !rl.Allow(ip) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 4th request should be denied
	if rl.Allow(ip) {
		t.Error("4th request should be denied")
	}
}

func TestRateLimiterMultipleIPs(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	defer rl.Close()

	ip1 := "192.168.1.1"
	ip2 := "192.168.1.2"

	// Each IP should have its own bucket
	for i := 0; i < 2; i++ {
		if !rl.Allow(ip1) {
			t.Errorf("Request %d for ip1 should be allowed", i+1)
		}
		if !rl.Allow(ip2) {
			t.Errorf("Request %d for ip2 should be allowed", i+1)
		}
	}

	// Both should now be rate limited
	if rl.Allow(ip1) {
		t.Error("ip1 should be rate limited")
	}
	if rl.Allow(ip2) {
		t.Error("ip2 should be rate limited")
	}
}

func TestRateLimiterClose(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)

	// Close should not panic
	rl.Close()

	// Multiple closes should be safe
	rl.Close()
	rl.Close()
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	defer rl.Close()

	ip := "192.168.1.1"

	// First request allowed
	if !rl.Allow(ip) {
		t.Error("First request should be allowed")
	}

	// Immediate second should be denied
	if rl.Allow(ip) {
		t.Error("Immediate second request should be denied")
	}

	// Wait for refill
	time.Sleep(15 * time.Millisecond)

	// Should be allowed again
	if !rl.Allow(ip) {
		t.Error("Request after refill should be allowed")
	}
}

func TestRecoverPanic(t *testing.T) {
	// This test verifies recoverPanic properly catches panics
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Simulate panic recovery
	func() {
		defer recoverPanic(logger, "test operation")
		panic("test panic")
	}()

	// If we get here, the panic was recovered
}

// Mock handler for testing
type mockHandler struct {
	called bool
}

func (m *mockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.called = true
	w.WriteHeader(http.StatusOK)
}

func TestSecurityMiddlewareBasic(t *testing.T) {
	// Test basic middleware functionality
	handler := &mockHandler{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	config := SecurityConfig{
		MaxBodySize: 1000,
	}

	sm := NewSecurityMiddleware(handler, logger, config)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	w := httptest.NewRecorder()

	sm.ServeHTTP(w, req)

	if !handler.called {
		t.Error("Handler should have been called")
	}
}

func TestSecurityMiddlewareWithRateLimit(t *testing.T) {
	handler := &mockHandler{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	config := SecurityConfig{
		RateLimit:   2, // 2 requests per minute
		MaxBodySize: 1000,
	}

	sm := NewSecurityMiddleware(handler, logger, config)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	// First two requests should succeed
	for i := 0; i < 2; i++ {
		handler.called = false
		w := httptest.NewRecorder()
		sm.ServeHTTP(w, req)
		if !handler.called {
			t.Errorf("Request %d should have been allowed", i+1)
		}
	}

	// Third request should be rate limited
	handler.called = false
	w := httptest.NewRecorder()
	sm.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
}

func TestSecurityMiddlewareMaxBodySize(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	var readErr error
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	sm := NewSecurityMiddleware(handler, logger, SecurityConfig{MaxBodySize: 10})
	defer sm.Close()

	req := httptest.NewRequest("POST", "/mcp", strings.NewReader(strings.Repeat("x", 100)))
	req.RemoteAddr = "192.168.1.1:12345"
	sm.ServeHTTP(httptest.NewRecorder(), req)

	if readErr == nil {
		t.Error("Expected reading an oversized body to fail")
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("MCP_RATE_LIMIT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MCP_HTTP_ADDR", "")
	t.Setenv("MCP_TRUST_PROXY", "")

	tests := []struct {
		name      string
		args      []string
		wantAddr  string
		wantRate  int
		wantLevel slog.Level
		wantProxy bool
		wantErr   bool
	}{
		{"defaults", nil, "", 60, slog.LevelInfo, false, false},
		{"http mode", []string{"-http", ":8080", "-rate-limit", "10"}, ":8080", 10, slog.LevelInfo, false, false},
		{"debug logging", []string{"-log-level", "debug"}, "", 60, slog.LevelDebug, false, false},
		{"behind proxy", []string{"-http", ":8080", "-trust-proxy"}, ":8080", 60, slog.LevelInfo, true, false},
		{"bad log level", []string{"-log-level", "loud"}, "", 0, 0, false, true},
		{"negative rate", []string{"-rate-limit", "-1"}, "", 0, 0, false, true},
		{"unknown flag", []string{"-wiki"}, "", 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfig failed: %v", err)
			}
			if cfg.HTTPAddr != tt.wantAddr {
				t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, tt.wantAddr)
			}
			if cfg.RateLimit != tt.wantRate {
				t.Errorf("RateLimit = %d, want %d", cfg.RateLimit, tt.wantRate)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.wantLevel)
			}
			if cfg.TrustProxy != tt.wantProxy {
				t.Errorf("TrustProxy = %v, want %v", cfg.TrustProxy, tt.wantProxy)
			}
		})
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("MCP_RATE_LIMIT", "5")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MCP_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("MCP_TRUST_PROXY", "true")

	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("RateLimit = %d, want 5", cfg.RateLimit)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelWarn)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9000")
	}
	if !cfg.TrustProxy {
		t.Error("TrustProxy should be read from MCP_TRUST_PROXY")
	}
}

func TestRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	handler, closeRouter := newRouter(newServer(logger), logger, SecurityConfig{RateLimit: 1, MaxBodySize: 1 << 20})
	defer closeRouter()

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), ServerName) {
		t.Errorf("/health body = %q, want server name", body)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "swedish_bank_account_mcp_http_requests_total") {
		t.Error("/metrics should expose HTTP request counters")
	}

	// The first /mcp request uses the only token; the second is limited.
	for i := 0; i < 2; i++ {
		resp, err = http.Post(srv.URL+"/mcp", "application/json", strings.NewReader("{}"))
		if err != nil {
			t.Fatalf("POST /mcp failed: %v", err)
		}
		_ = resp.Body.Close()
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("second /mcp status = %d, want 429", resp.StatusCode)
	}
}

func TestRouterUnmatchedPathsShareOneSeries(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	handler, closeRouter := newRouter(newServer(logger), logger, SecurityConfig{})
	defer closeRouter()

	// One request first so the unmatched series exists before counting.
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/junk", nil))
	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)

	for i := 0; i < 500; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/junk-%d", i), nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET /junk-%d status = %d, want 404", i, rec.Code)
		}
	}

	if after := testutil.CollectAndCount(metrics.HTTPRequestDuration); after != before {
		t.Errorf("unmatched paths added %d duration series, want 0", after-before)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `path="`+unmatchedRoute+`"`) {
		t.Errorf("/metrics should label unmatched requests %q", unmatchedRoute)
	}
	if strings.Contains(rec.Body.String(), "/junk-") {
		t.Error("/metrics should not expose raw request paths")
	}
}

func TestRouterRateLimitIgnoresForwardedHeaders(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name         string
		trustProxy   bool
		wantRejected int
	}{
		{"direct clients keyed on remote address", false, 18},
		{"trusted proxy keyed on forwarded address", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, closeRouter := newRouter(newServer(logger), logger, SecurityConfig{
				RateLimit:  2,
				TrustProxy: tt.trustProxy,
			})
			defer closeRouter()

			rejected := 0
			for i := 0; i < 20; i++ {
				req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}"))
				req.RemoteAddr = "203.0.113.7:40000"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)
				if rec.Code == http.StatusTooManyRequests {
					rejected++
				}
			}

			if rejected != tt.wantRejected {
				t.Errorf("rejected = %d, want %d", rejected, tt.wantRejected)
			}
		})
	}
}
