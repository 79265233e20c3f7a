package sweden

import "github.com/olgasafonova/swedish-bank-account-mcp-server/account"

// ValidateBankAccountArgs contains parameters for validating a bank account.
type ValidateBankAccountArgs struct {
	ClearingNumber string `json:"clearing_number" jsonschema:"Clearing number, 4 digits or 5 for Swedbank 8xxxx-x. Spaces and hyphens are ignored"`
	AccountNumber  string `json:"account_number" jsonschema:"Account number without the clearing number. Spaces and hyphens are ignored"`
}

// ValidateBankAccountResult is the MCP response for account validation.
// Rejected input is reported with Valid false rather than as a tool error.
type ValidateBankAccountResult struct {
	Valid     bool                   `json:"valid"`
	ErrorCode string                 `json:"error_code,omitempty"` // bad_length, unknown, bad_account_number_length, bad_checksum
	Error     string                 `json:"error,omitempty"`
	Guidance  string                 `json:"guidance,omitempty"` // what the user should correct
	Bank      *BankSummary           `json:"bank,omitempty"`
	Account   *account.DisplayRecord `json:"account,omitempty"`
	Formatted string                 `json:"formatted,omitempty"` // e.g. "9420-4172385"
}

// ResolveClearingNumberArgs contains parameters for resolving a clearing number.
type ResolveClearingNumberArgs struct {
	ClearingNumber string `json:"clearing_number" jsonschema:"Clearing number, 4 digits or 5 for Swedbank 8xxxx-x. Spaces and hyphens are ignored"`
}

// ResolveClearingNumberResult is the MCP response for clearing number lookup.
type ResolveClearingNumberResult struct {
	Valid          bool         `json:"valid"`
	ErrorCode      string       `json:"error_code,omitempty"`
	Error          string       `json:"error,omitempty"`
	Guidance       string       `json:"guidance,omitempty"`
	ClearingNumber string       `json:"clearing_number,omitempty"` // canonical digits
	Formatted      string       `json:"formatted,omitempty"`       // "8424-4" for five digits
	Bank           *BankSummary `json:"bank,omitempty"`
}

// ListBanksArgs contains parameters for listing registered banks.
type ListBanksArgs struct {
	Category string `json:"category,omitempty" jsonschema:"Only banks in this category: standard, dataclearing_only or historical"`
	Query    string `json:"query,omitempty" jsonschema:"Case-insensitive part of the bank name, e.g. swedbank"`
}

// ListBanksResult is the MCP response for listing banks.
type ListBanksResult struct {
	Banks []BankSummary `json:"banks"`
	Count int           `json:"count"`
}

// AccountLengthArgs contains parameters for the account length lookup.
type AccountLengthArgs struct {
	ClearingNumber string `json:"clearing_number" jsonschema:"Clearing number, 4 digits or 5 for Swedbank 8xxxx-x"`
}

// AccountLengthResult is the MCP response for the account length lookup.
type AccountLengthResult struct {
	Valid       bool   `json:"valid"`
	ErrorCode   string `json:"error_code,omitempty"`
	Error       string `json:"error,omitempty"`
	Guidance    string `json:"guidance,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	MinDigits   int    `json:"min_digits,omitempty"`
	MaxDigits   int    `json:"max_digits,omitempty"`
	Description string `json:"description,omitempty"` // e.g. "Forex Bank account numbers have 7 digits"
}
