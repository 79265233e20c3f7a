// Swedish Bank Account MCP Server - A Model Context Protocol server that validates
// Swedish bank account numbers against the clearing number registry.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/internal/sweden"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/tools"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/tracing"
)

const (
	ServerName    = "swedish-bank-account-mcp-server"
	ServerVersion = "1.0.0"
)

const instructions = `Swedish Bank Account MCP Server validates Swedish bank account numbers offline.

Available tools:
- sweden_validate_bank_account: Check a clearing number + account number (length and check digit)
- sweden_resolve_clearing_number: Find the bank that owns a clearing number
- sweden_account_length: How many account digits a bank expects
- sweden_list_banks: List banks, their clearing ranges and rules

A clearing number has 4 digits, or 5 for Swedbank accounts written 8xxxx-x.
Validation failures are returned as results with error_code and guidance, not as tool errors.`

// config holds command line and environment configuration.
type config struct {
	HTTPAddr    string
	RateLimit   int
	MaxBodySize int64
	TrustProxy  bool
	LogLevel    slog.Level
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceCfg := tracing.DefaultConfig()
	traceCfg.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, traceCfg)
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	server := newServer(logger)

	if cfg.HTTPAddr != "" {
		return serveHTTP(ctx, server, logger, cfg)
	}

	logger.Info("Starting Swedish Bank Account MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"transport", "stdio",
		"tools", len(tools.AllTools),
	)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// newServer creates the MCP server with every tool registered.
func newServer(logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	service := sweden.NewService(sweden.WithLogger(logger))
	tools.NewHandlerRegistry(service, logger).RegisterAll(server)
	return server
}

// parseConfig reads flags, falling back to environment variables for defaults.
func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet(ServerName, flag.ContinueOnError)

	httpAddr := fs.String("http", getEnvOrDefault("MCP_HTTP_ADDR", ""), "HTTP listen address, e.g. :8080 (empty serves MCP on stdio)")
	rateLimit := fs.Int("rate-limit", getEnvInt("MCP_RATE_LIMIT", 60), "HTTP requests per minute per client IP (0 disables)")
	maxBody := fs.Int64("max-body", 1<<20, "maximum HTTP request body in bytes (0 disables)")
	trustProxy := fs.Bool("trust-proxy", getEnvBool("MCP_TRUST_PROXY", false), "take the client IP from X-Forwarded-For/X-Real-IP (only behind a trusted reverse proxy)")
	logLevel := fs.String("log-level", getEnvOrDefault("LOG_LEVEL", "info"), "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return config{}, err
	}
	if *rateLimit < 0 {
		return config{}, fmt.Errorf("rate-limit must not be negative, got %d", *rateLimit)
	}

	return config{
		HTTPAddr:    *httpAddr,
		RateLimit:   *rateLimit,
		MaxBodySize: *maxBody,
		TrustProxy:  *trustProxy,
		LogLevel:    level,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
