package account

import (
	"errors"
	"fmt"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/bank"
)

// Sentinel errors for errors.Is. The concrete errors returned are
// *ClearingError and *AccountError, which carry the digit counts.
var (
	ErrBadLength              = errors.New("clearing number must have 4 or 5 digits")
	ErrUnknown                = errors.New("clearing number is not assigned to any bank")
	ErrBadAccountNumberLength = errors.New("account number has the wrong number of digits")
	ErrBadChecksum            = errors.New("account number checksum does not match")
)

// ClearingErrorKind tells why a clearing number was rejected.
type ClearingErrorKind uint8

const (
	ClearingBadLength ClearingErrorKind = iota + 1
	ClearingUnknown
)

// ClearingError is returned by ResolveClearingNumber.
type ClearingError struct {
	Kind   ClearingErrorKind
	Length int    // digits found in the input
	Digits string // the extracted digits
}

func (e *ClearingError) Error() string {
	switch e.Kind {
	case ClearingBadLength:
		return fmt.Sprintf("%s, got %d", ErrBadLength, e.Length)
	case ClearingUnknown:
		return fmt.Sprintf("%s: %s", ErrUnknown, e.Digits)
	default:
		return "invalid clearing number"
	}
}

func (e *ClearingError) Unwrap() error {
	switch e.Kind {
	case ClearingBadLength:
		return ErrBadLength
	case ClearingUnknown:
		return ErrUnknown
	default:
		return nil
	}
}

// AccountErrorKind tells why an account number was rejected.
type AccountErrorKind uint8

const (
	AccountBadLength AccountErrorKind = iota + 1
	AccountBadChecksum
)

// AccountError is returned by ValidateAccountNumber.
type AccountError struct {
	Kind     AccountErrorKind
	Length   int         // digits found in the input
	Expected bank.Length // digits the bank accepts
	Bank     bank.Bank
}

func (e *AccountError) Error() string {
	switch e.Kind {
	case AccountBadLength:
		return fmt.Sprintf("%s: %s expects %s, got %d", ErrBadAccountNumberLength, e.Bank.Name(), e.Expected, e.Length)
	case AccountBadChecksum:
		return fmt.Sprintf("%s for %s", ErrBadChecksum, e.Bank.Name())
	default:
		return "invalid account number"
	}
}

func (e *AccountError) Unwrap() error {
	switch e.Kind {
	case AccountBadLength:
		return ErrBadAccountNumberLength
	case AccountBadChecksum:
		return ErrBadChecksum
	default:
		return nil
	}
}

// Error codes reported by ErrorCode.
const (
	CodeBadLength              = "bad_length"
	CodeUnknown                = "unknown"
	CodeBadAccountNumberLength = "bad_account_number_length"
	CodeBadChecksum            = "bad_checksum"
)

// ErrorCode maps a validation error to a stable snake_case code, or "" when
// err is nil or not a validation error.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadLength):
		return CodeBadLength
	case errors.Is(err, ErrUnknown):
		return CodeUnknown
	case errors.Is(err, ErrBadAccountNumberLength):
		return CodeBadAccountNumberLength
	case errors.Is(err, ErrBadChecksum):
		return CodeBadChecksum
	default:
		return ""
	}
}
