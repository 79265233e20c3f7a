// Package account validates Swedish bank account numbers.
//
// Validation happens in two steps. ResolveClearingNumber finds the bank that
// owns a clearing number, then ValidateAccountNumber checks the account
// number's length and checksum with that bank's rule. Inputs may contain any
// separators; only the digits are used.
//
//	_, cn, err := account.ResolveClearingNumber("9420")
//	if err != nil { ... }
//	acct, err := account.ValidateAccountNumber(cn, "417 238-5")
//
// All functions are pure and safe for concurrent use.
package account

import (
	"strconv"

	"github.com/olgasafonova/swedish-bank-account-mcp-server/bank"
)

// ClearingNumber is a clearing number that resolved to a bank. The zero value
// is not valid; values are only produced by ResolveClearingNumber.
type ClearingNumber struct {
	bank   bank.Bank
	digits string
}

// ResolveClearingNumber extracts the digits of raw and looks them up in the
// bank registry. It returns a *ClearingError when there are not 4 or 5
// digits, or when no bank owns the number.
func ResolveClearingNumber(raw string) (bank.Category, ClearingNumber, error) {
	digits := Digits(raw)
	n := len(digits)
	if n != 4 && n != 5 {
		return 0, ClearingNumber{}, &ClearingError{Kind: ClearingBadLength, Length: n, Digits: digits}
	}

	// A leading zero would let "09420" pass as 9420; no assigned number has one.
	value, err := strconv.Atoi(digits)
	if err != nil || digits[0] == '0' {
		return 0, ClearingNumber{}, &ClearingError{Kind: ClearingUnknown, Length: n, Digits: digits}
	}

	b, ok := bank.Resolve(value)
	if !ok {
		return 0, ClearingNumber{}, &ClearingError{Kind: ClearingUnknown, Length: n, Digits: digits}
	}
	return b.Category(), ClearingNumber{bank: b, digits: digits}, nil
}

// String returns the canonical digits, e.g. "9420".
func (c ClearingNumber) String() string {
	return c.digits
}

// Formatted writes five digit clearing numbers with their check digit split
// off, "8424-4". Four digit numbers are returned as is.
func (c ClearingNumber) Formatted() string {
	if len(c.digits) == 5 {
		return c.digits[:4] + "-" + c.digits[4:]
	}
	return c.digits
}

// Bank returns the resolved bank.
func (c ClearingNumber) Bank() bank.Bank {
	return c.bank
}

// BankName returns the bank's display name.
func (c ClearingNumber) BankName() string {
	return c.bank.Name()
}

// Category returns the bank's classification.
func (c ClearingNumber) Category() bank.Category {
	return c.bank.Category()
}

// AccountLength returns how many account digits the bank accepts.
func (c ClearingNumber) AccountLength() bank.Length {
	return c.bank.AccountLength()
}

// IsZero reports whether c was not produced by ResolveClearingNumber.
func (c ClearingNumber) IsZero() bool {
	return c.digits == ""
}
