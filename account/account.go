package account

import (
	"github.com/olgasafonova/swedish-bank-account-mcp-server/bank"
	"github.com/olgasafonova/swedish-bank-account-mcp-server/checksum"
)

// ValidatedBankAccountNumber is a clearing number and account number that
// passed every check. Values are only produced by ValidateAccountNumber.
type ValidatedBankAccountNumber struct {
	clearing ClearingNumber
	account  string
}

// DisplayRecord is the display form of a validated account.
type DisplayRecord struct {
	BankName       string `json:"bank_name"`
	ClearingNumber string `json:"clearing_number"`
	AccountNumber  string `json:"account_number"`
}

// ValidateAccountNumber checks the digits of raw against the length and
// checksum rule of the bank that owns clearing. It returns an *AccountError
// on failure, or a *ClearingError if clearing is the zero value.
func ValidateAccountNumber(clearing ClearingNumber, raw string) (ValidatedBankAccountNumber, error) {
	if clearing.IsZero() || !clearing.bank.Valid() {
		return ValidatedBankAccountNumber{}, &ClearingError{Kind: ClearingUnknown, Digits: clearing.digits, Length: len(clearing.digits)}
	}

	b := clearing.bank
	digits := Digits(raw)
	n := len(digits)

	expected := b.AccountLength()
	if !expected.Contains(n) {
		return ValidatedBankAccountNumber{}, &AccountError{Kind: AccountBadLength, Length: n, Expected: expected, Bank: b}
	}

	if !passes(b.Rule(), clearing.digits, digits) {
		return ValidatedBankAccountNumber{}, &AccountError{Kind: AccountBadChecksum, Length: n, Expected: expected, Bank: b}
	}

	return ValidatedBankAccountNumber{clearing: clearing, account: digits}, nil
}

// Validate resolves clearing and validates accountNumber in one call.
func Validate(clearing, accountNumber string) (ValidatedBankAccountNumber, error) {
	_, cn, err := ResolveClearingNumber(clearing)
	if err != nil {
		return ValidatedBankAccountNumber{}, err
	}
	return ValidateAccountNumber(cn, accountNumber)
}

// checksumInput builds the digit sequence rule is checked over.
func checksumInput(rule bank.Rule, clearing, account string) string {
	if rule.Family != bank.Type1 {
		return account
	}
	if rule.SkipFirst {
		return clearing[1:] + account
	}
	return clearing + account
}

func passes(rule bank.Rule, clearing, account string) bool {
	input := checksumInput(rule, clearing, account)
	switch rule.Algorithm {
	case bank.Mod10:
		return checksum.Mod10(input)
	case bank.Mod11:
		return checksum.Mod11(input)
	default:
		return false
	}
}

// ClearingNumber returns the clearing number part.
func (v ValidatedBankAccountNumber) ClearingNumber() ClearingNumber {
	return v.clearing
}

// AccountNumber returns the canonical account digits.
func (v ValidatedBankAccountNumber) AccountNumber() string {
	return v.account
}

// BankName returns the display name of the owning bank.
func (v ValidatedBankAccountNumber) BankName() string {
	return v.clearing.BankName()
}

// DisplayRecord returns the fields used to show the account to a user.
func (v ValidatedBankAccountNumber) DisplayRecord() DisplayRecord {
	return DisplayRecord{
		BankName:       v.BankName(),
		ClearingNumber: v.clearing.String(),
		AccountNumber:  v.account,
	}
}

// Formatted renders the account as commonly printed: "9420-4172385", or
// "8424-4, 9831892246" for five digit Swedbank clearing numbers.
func (v ValidatedBankAccountNumber) Formatted() string {
	if len(v.clearing.digits) == 5 {
		return v.clearing.Formatted() + ", " + v.account
	}
	return v.clearing.digits + "-" + v.account
}

func (v ValidatedBankAccountNumber) String() string {
	return v.Formatted()
}
