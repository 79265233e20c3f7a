package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/internal/sweden"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/metrics"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	service *sweden.Service
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(service *sweden.Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		service: service,
		logger:  logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "ValidateBankAccount":
		h.register(server, tool, spec, h.service.ValidateBankAccountMCP)
	case "ResolveClearingNumber":
		h.register(server, tool, spec, h.service.ResolveClearingNumberMCP)
	case "AccountLength":
		h.register(server, tool, spec, h.service.AccountLengthMCP)
	case "ListBanks":
		h.register(server, tool, spec, h.service.ListBanksMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	} else {
		// The registry is compiled in; no tool reaches outside the process.
		annotations.OpenWorldHint = ptr(false)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the service method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		requestID := uuid.NewString()

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(
			attribute.String("mcp.tool.country", spec.Country),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
			attribute.String("mcp.request_id", requestID),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			tracing.RecordError(span, err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "request_id", requestID, "error", err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, requestID, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details. Account numbers are masked.
func (h *HandlerRegistry) logExecution(spec ToolSpec, requestID string, args, result any) {
	attrs := []any{"tool", spec.Name, "country", spec.Country, "request_id", requestID}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case sweden.ValidateBankAccountArgs:
		attrs = append(attrs, "clearing_number", a.ClearingNumber, "account", sweden.MaskAccount(a.AccountNumber))
	case sweden.ResolveClearingNumberArgs:
		attrs = append(attrs, "clearing_number", a.ClearingNumber)
	case sweden.AccountLengthArgs:
		attrs = append(attrs, "clearing_number", a.ClearingNumber)
	case sweden.ListBanksArgs:
		attrs = append(attrs, "category", a.Category, "query", a.Query)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case sweden.ValidateBankAccountResult:
		attrs = append(attrs, "valid", r.Valid)
		if r.ErrorCode != "" {
			attrs = append(attrs, "error_code", r.ErrorCode)
		}
		if r.Bank != nil {
			attrs = append(attrs, "bank", r.Bank.Name)
		}
	case sweden.ResolveClearingNumberResult:
		attrs = append(attrs, "valid", r.Valid)
		if r.Bank != nil {
			attrs = append(attrs, "bank", r.Bank.Name)
		}
	case sweden.AccountLengthResult:
		attrs = append(attrs, "valid", r.Valid, "bank", r.BankName)
	case sweden.ListBanksResult:
		attrs = append(attrs, "results_count", r.Count)
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	case func(context.Context, sweden.ValidateBankAccountArgs) (sweden.ValidateBankAccountResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, sweden.ResolveClearingNumberArgs) (sweden.ResolveClearingNumberResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, sweden.AccountLengthArgs) (sweden.AccountLengthResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, sweden.ListBanksArgs) (sweden.ListBanksResult, error):
		register(h, server, tool, spec, m)
	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
