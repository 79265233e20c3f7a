package sweden

import (
	"context"
	"fmt"
	"strings"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/account"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/bank"
	apperrors "github.com/olgasafonova/swedish-bank-account-mcp-server/internal/errors"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/metrics"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/tracing"
	"go.opentelemetry.io/otel/trace"
)

// MCP Tool wrapper methods
// These methods wrap the account package with Args/Result types for MCP integration.

// ValidateBankAccountMCP resolves the clearing number and validates the
// account number against the owning bank's length and checksum rule.
func (s *Service) ValidateBankAccountMCP(ctx context.Context, args ValidateBankAccountArgs) (ValidateBankAccountResult, error) {
	if err := args.Validate(); err != nil {
		return ValidateBankAccountResult{}, err
	}
	span := trace.SpanFromContext(ctx)

	cn, err := s.resolve(span, args.ClearingNumber)
	if err != nil {
		return ValidateBankAccountResult{
			ErrorCode: account.ErrorCode(err),
			Error:     err.Error(),
			Guidance:  apperrors.Guidance(err),
		}, nil
	}

	summary := newBankSummary(cn.Bank())
	acct, err := account.ValidateAccountNumber(cn, args.AccountNumber)
	code := account.ErrorCode(err)
	metrics.RecordValidation(metrics.StageAccount, code)
	tracing.AddValidationAttributes(span, cn.String(), cn.BankName(), outcome(code))

	if err != nil {
		s.logger.Debug("Account number rejected",
			"clearing_number", cn.String(),
			"bank", cn.BankName(),
			"account", MaskAccount(args.AccountNumber),
			"reason", code)
		return ValidateBankAccountResult{
			ErrorCode: code,
			Error:     err.Error(),
			Guidance:  apperrors.Guidance(err),
			Bank:      &summary,
		}, nil
	}

	display := acct.DisplayRecord()
	return ValidateBankAccountResult{
		Valid:     true,
		Bank:      &summary,
		Account:   &display,
		Formatted: acct.Formatted(),
	}, nil
}

// ResolveClearingNumberMCP looks up the bank that owns a clearing number.
func (s *Service) ResolveClearingNumberMCP(ctx context.Context, args ResolveClearingNumberArgs) (ResolveClearingNumberResult, error) {
	if err := args.Validate(); err != nil {
		return ResolveClearingNumberResult{}, err
	}
	span := trace.SpanFromContext(ctx)

	cn, err := s.resolve(span, args.ClearingNumber)
	if err != nil {
		return ResolveClearingNumberResult{
			ErrorCode: account.ErrorCode(err),
			Error:     err.Error(),
			Guidance:  apperrors.Guidance(err),
		}, nil
	}
	tracing.AddValidationAttributes(span, cn.String(), cn.BankName(), metrics.OutcomeOK)

	summary := newBankSummary(cn.Bank()).withRanges(cn.Bank())
	return ResolveClearingNumberResult{
		Valid:          true,
		ClearingNumber: cn.String(),
		Formatted:      cn.Formatted(),
		Bank:           &summary,
	}, nil
}

// AccountLengthMCP reports how many account digits the bank behind a
// clearing number accepts.
func (s *Service) AccountLengthMCP(ctx context.Context, args AccountLengthArgs) (AccountLengthResult, error) {
	if err := args.Validate(); err != nil {
		return AccountLengthResult{}, err
	}
	span := trace.SpanFromContext(ctx)

	cn, err := s.resolve(span, args.ClearingNumber)
	if err != nil {
		return AccountLengthResult{
			ErrorCode: account.ErrorCode(err),
			Error:     err.Error(),
			Guidance:  apperrors.Guidance(err),
		}, nil
	}
	tracing.AddValidationAttributes(span, cn.String(), cn.BankName(), metrics.OutcomeOK)

	length := cn.AccountLength()
	desc := fmt.Sprintf("%s account numbers have %d digits", cn.BankName(), length.Min)
	if !length.IsFixed() {
		desc = fmt.Sprintf("%s account numbers have %d to %d digits", cn.BankName(), length.Min, length.Max)
	}
	return AccountLengthResult{
		Valid:       true,
		BankName:    cn.BankName(),
		MinDigits:   length.Min,
		MaxDigits:   length.Max,
		Description: desc,
	}, nil
}

// ListBanksMCP lists the registered banks, optionally filtered by category
// and by a name query. It returns a NotFoundError when the query matches no bank.
func (s *Service) ListBanksMCP(ctx context.Context, args ListBanksArgs) (ListBanksResult, error) {
	if err := args.Validate(); err != nil {
		return ListBanksResult{}, err
	}

	category, filterCategory := parseCategory(args.Category)
	query := strings.ToLower(strings.TrimSpace(args.Query))

	banks := make([]BankSummary, 0)
	for _, b := range bank.All() {
		if filterCategory && b.Category() != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Name()), query) &&
			!strings.Contains(strings.ToLower(b.String()), query) {
			continue
		}
		banks = append(banks, newBankSummary(b).withRanges(b))
	}

	if len(banks) == 0 {
		return ListBanksResult{}, apperrors.NewNotFoundError(args.Query)
	}
	return ListBanksResult{Banks: banks, Count: len(banks)}, nil
}

// resolve runs clearing number resolution and records its outcome.
func (s *Service) resolve(span trace.Span, raw string) (account.ClearingNumber, error) {
	_, cn, err := account.ResolveClearingNumber(raw)
	code := account.ErrorCode(err)
	metrics.RecordValidation(metrics.StageClearing, code)
	if err != nil {
		digits := account.Digits(raw)
		tracing.AddValidationAttributes(span, digits, "", code)
		s.logger.Debug("Clearing number rejected", "clearing_number", digits, "reason", code)
		return account.ClearingNumber{}, err
	}
	metrics.RecordResolvedBank(cn.BankName())
	return cn, nil
}

func outcome(code string) string {
	if code == "" {
		return metrics.OutcomeOK
	}
	return code
}
