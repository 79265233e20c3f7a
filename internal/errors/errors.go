// Package errors provides shared error types for the MCP tools and turns
// account validation errors into guidance for end users.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/account"
)

// NotFoundError indicates an entity was not found in the bank registry.
type NotFoundError struct {
	EntityType string // "bank", "clearing_number"
	Identifier string // clearing number or search query
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found in Swedish bank registry: %s", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("not found in Swedish bank registry: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a bank lookup.
func NewNotFoundError(identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: "bank",
		Identifier: identifier,
	}
}

// ValidationError indicates invalid tool arguments.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// Guidance returns a sentence telling the user how to correct the input that
// produced err. It returns "" for nil and for errors that are not account
// validation errors.
func Guidance(err error) string {
	var ce *account.ClearingError
	if stderrors.As(err, &ce) {
		switch ce.Kind {
		case account.ClearingBadLength:
			return fmt.Sprintf("Enter 4 or 5 digits for the clearing number (got %d).", ce.Length)
		case account.ClearingUnknown:
			return fmt.Sprintf("Clearing number %s is not assigned to any Swedish bank. Check the first digits of the account number.", ce.Digits)
		}
	}

	var ae *account.AccountError
	if stderrors.As(err, &ae) {
		switch ae.Kind {
		case account.AccountBadLength:
			if ae.Expected.IsFixed() {
				return fmt.Sprintf("Enter %d digits for the account number at %s (got %d).", ae.Expected.Min, ae.Bank.Name(), ae.Length)
			}
			return fmt.Sprintf("Enter %d to %d digits for the account number at %s (got %d).", ae.Expected.Min, ae.Expected.Max, ae.Bank.Name(), ae.Length)
		case account.AccountBadChecksum:
			return fmt.Sprintf("The account number does not match the check digit used by %s. Check for typos.", ae.Bank.Name())
		}
	}

	return ""
}
