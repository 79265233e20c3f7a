// Package sweden exposes Swedish bank account validation as MCP tool methods.
// Each XxxMCP method takes an Args struct, validates it, and returns a Result
// struct ready to be serialized to the client.
package sweden

import (
	"io"
	"log/slog"
	"strings"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/account"
)

// Service answers bank account questions from the static bank registry.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	logger *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the logger used for rejected inputs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new Sweden bank account service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaskAccount keeps the last four digits of an account number for logging,
// e.g. "******2385". Inputs with four digits or fewer are fully masked.
func MaskAccount(raw string) string {
	digits := account.Digits(raw)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
