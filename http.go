package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// unmatchedRoute labels requests no route matched, so arbitrary paths do not
// create new metric series.
const unmatchedRoute = "unmatched"

// newRouter serves MCP over streamable HTTP at /mcp behind the security
// middleware, plus /metrics and /health.
func newRouter(server *mcp.Server, logger *slog.Logger, security SecurityConfig) (http.Handler, func()) {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	protected := NewSecurityMiddleware(mcpHandler, logger, security)

	r := chi.NewRouter()
	if security.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(httpMetrics)

	r.Handle("/mcp", protected)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"status":"ok","name":%q,"version":%q}`, ServerName, ServerVersion)
	})

	return r, protected.Close
}

// httpMetrics records request counts and latency per route pattern.
func httpMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordHTTPRequest(r.Method, path, status, time.Since(start).Seconds())
	})
}

// serveHTTP runs the HTTP server until ctx is cancelled, then shuts it down.
func serveHTTP(ctx context.Context, server *mcp.Server, logger *slog.Logger, cfg config) error {
	handler, closeRouter := newRouter(server, logger, SecurityConfig{
		RateLimit:   cfg.RateLimit,
		MaxBodySize: cfg.MaxBodySize,
	})
	defer closeRouter()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Swedish Bank Account MCP Server",
			"name", ServerName,
			"version", ServerVersion,
			"transport", "http",
			"addr", cfg.HTTPAddr,
			"rate_limit", cfg.RateLimit,
			"trust_proxy", cfg.TrustProxy,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
