package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/internal/sweden"
)

func newTestRegistry() *HandlerRegistry {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewHandlerRegistry(sweden.NewService(sweden.WithLogger(logger)), logger)
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := sweden.NewService(sweden.WithLogger(logger))

	registry := NewHandlerRegistry(svc, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.service != svc {
		t.Error("Registry should hold the service reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	registry := newTestRegistry()

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "sweden_validate_bank_account",
				Title:       "Validate Swedish Bank Account",
				Description: "Validate a bank account number",
				Method:      "ValidateBankAccount",
				Country:     "sweden",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName:  "sweden_validate_bank_account",
			wantDesc:  "Validate a bank account number",
			wantRO:    true,
			wantIdem:  true,
			wantDestr: false,
			wantOpen:  false,
		},
		{
			name: "open world tool",
			spec: ToolSpec{
				Name:        "sweden_fetch_registry",
				Title:       "Fetch Registry",
				Description: "Fetch the clearing registry",
				Method:      "FetchRegistry",
				Country:     "sweden",
				OpenWorld:   true,
			},
			wantName: "sweden_fetch_registry",
			wantDesc: "Fetch the clearing registry",
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tool.Annotations.OpenWorldHint == nil {
				t.Fatal("Expected OpenWorldHint to be set")
			}
			if *tool.Annotations.OpenWorldHint != tt.wantOpen {
				t.Errorf("OpenWorldHint = %v, want %v", *tool.Annotations.OpenWorldHint, tt.wantOpen)
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	registry := newTestRegistry()

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	registry := newTestRegistry()
	spec := ToolSpec{Name: "test_tool", Country: "sweden"}

	registry.logExecution(spec, "req-1",
		sweden.ValidateBankAccountArgs{ClearingNumber: "9420", AccountNumber: "4172385"},
		sweden.ValidateBankAccountResult{Valid: true, Bank: &sweden.BankSummary{Name: "Forex Bank"}})

	registry.logExecution(spec, "req-2",
		sweden.ValidateBankAccountArgs{ClearingNumber: "1234", AccountNumber: "1234567"},
		sweden.ValidateBankAccountResult{ErrorCode: "bad_checksum"})

	registry.logExecution(spec, "req-3",
		sweden.ResolveClearingNumberArgs{ClearingNumber: "9999"},
		sweden.ResolveClearingNumberResult{ErrorCode: "unknown"})

	registry.logExecution(spec, "req-4",
		sweden.AccountLengthArgs{ClearingNumber: "6789"},
		sweden.AccountLengthResult{Valid: true, BankName: "Handelsbanken"})

	registry.logExecution(spec, "req-5",
		sweden.ListBanksArgs{Query: "nordea"},
		sweden.ListBanksResult{Count: 4})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	seen := make(map[string]bool)
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if seen[spec.Name] {
			t.Errorf("Tool %s is defined twice", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Country == "" {
			t.Errorf("Tool %s has empty Country", spec.Name)
		}
		if !spec.ReadOnly || spec.Destructive || spec.OpenWorld {
			t.Errorf("Tool %s should be read-only and closed-world", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"ValidateBankAccount":   true,
		"ResolveClearingNumber": true,
		"AccountLength":         true,
		"ListBanks":             true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByCountry(t *testing.T) {
	swedenTools := ToolsByCountry("sweden")
	if len(swedenTools) != len(AllTools) {
		t.Errorf("Expected %d Sweden tools, got %d", len(AllTools), len(swedenTools))
	}

	for _, tool := range swedenTools {
		if tool.Country != "sweden" {
			t.Errorf("Tool %s has country %s, expected sweden", tool.Name, tool.Country)
		}
	}

	// Non-existent country should return empty
	unknownTools := ToolsByCountry("unknown")
	if len(unknownTools) != 0 {
		t.Errorf("Expected 0 tools for unknown country, got %d", len(unknownTools))
	}
}

func TestToolsByCategory(t *testing.T) {
	lookupTools := ToolsByCategory("lookup")
	if len(lookupTools) == 0 {
		t.Error("Expected lookup tools")
	}
	for _, tool := range lookupTools {
		if tool.Category != "lookup" {
			t.Errorf("Tool %s has category %s, expected lookup", tool.Name, tool.Category)
		}
	}
}

// connect registers all tools on a fresh server and returns a client session
// talking to it over in-memory transports.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "test-server", Version: "test"}, nil)
	newTestRegistry().RegisterAll(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server.Connect failed: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client.Connect failed: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestRegisterAll_ListTools(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(res.Tools) != len(AllTools) {
		t.Fatalf("got %d tools, want %d", len(res.Tools), len(AllTools))
	}

	names := make(map[string]bool)
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, spec := range AllTools {
		if !names[spec.Name] {
			t.Errorf("tool %s not registered", spec.Name)
		}
	}
}

func TestRegisterAll_CallTool(t *testing.T) {
	session := connect(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		tool      string
		args      map[string]any
		wantValid bool
		wantCode  string
	}{
		{
			name:      "valid account",
			tool:      "sweden_validate_bank_account",
			args:      map[string]any{"clearing_number": "9420", "account_number": "417 238 5"},
			wantValid: true,
		},
		{
			name:     "checksum failure is a result",
			tool:     "sweden_validate_bank_account",
			args:     map[string]any{"clearing_number": "1234", "account_number": "1234567"},
			wantCode: "bad_checksum",
		},
		{
			name:      "resolve clearing",
			tool:      "sweden_resolve_clearing_number",
			args:      map[string]any{"clearing_number": "8424-4"},
			wantValid: true,
		},
		{
			name:     "unknown clearing",
			tool:     "sweden_account_length",
			args:     map[string]any{"clearing_number": "9999"},
			wantCode: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: tt.tool, Arguments: tt.args})
			if err != nil {
				t.Fatalf("CallTool failed: %v", err)
			}
			if res.IsError {
				t.Fatalf("CallTool returned a tool error: %+v", res.Content)
			}

			var out struct {
				Valid     bool   `json:"valid"`
				ErrorCode string `json:"error_code"`
			}
			decodeStructured(t, res, &out)

			if out.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", out.Valid, tt.wantValid)
			}
			if out.ErrorCode != tt.wantCode {
				t.Errorf("error_code = %q, want %q", out.ErrorCode, tt.wantCode)
			}
		})
	}
}

func TestRegisterAll_CallToolError(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "sweden_list_banks",
		Arguments: map[string]any{"query": "no such bank"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Error("Expected a tool error for a query matching no bank")
	}
}

func decodeStructured(t *testing.T, res *mcp.CallToolResult, out any) {
	t.Helper()
	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
}
