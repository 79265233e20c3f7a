package tools

// AllTools contains all tool specifications for the Swedish bank account MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// VALIDATION TOOLS
	// ==========================================================================
	{
		Name:     "sweden_validate_bank_account",
		Method:   "ValidateBankAccount",
		Title:    "Validate Swedish Bank Account",
		Category: "validation",
		Country:  "sweden",
		Description: `Validate a Swedish bank account number (clearing number + account number).

USE WHEN: User asks "is this account number correct", "check bank account 8424-4 983 189 224-6", "which bank is account X at", or wants to catch typos before a payment.

NOT FOR: Only finding the bank behind a clearing number (use sweden_resolve_clearing_number). Bankgiro or Plusgiro payment numbers are not bank accounts.

PARAMETERS:
- clearing_number: 4 digits, or 5 for Swedbank 8xxxx-x (required). Spaces and hyphens are ignored.
- account_number: The account number after the clearing number (required).

RETURNS: valid flag, the bank, the formatted number (e.g. "9420-4172385"). On failure: error_code (bad_length, unknown, bad_account_number_length, bad_checksum) and guidance telling the user what to fix.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "sweden_resolve_clearing_number",
		Method:   "ResolveClearingNumber",
		Title:    "Resolve Swedish Clearing Number",
		Category: "lookup",
		Country:  "sweden",
		Description: `Find the bank that owns a Swedish clearing number.

USE WHEN: User asks "which bank has clearing number 9420", "what is clearing 8327", or only has the first digits of an account.

NOT FOR: Checking a full account number (use sweden_validate_bank_account).

PARAMETERS:
- clearing_number: 4 digits, or 5 for Swedbank 8xxxx-x (required).

RETURNS: Bank name, category (standard, dataclearing_only, historical), accepted account length, checksum rule and the bank's clearing ranges.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "sweden_account_length",
		Method:   "AccountLength",
		Title:    "Swedish Account Number Length",
		Category: "lookup",
		Country:  "sweden",
		Description: `Tell how many digits the account number must have for a clearing number.

USE WHEN: User asks "how long is a Handelsbanken account number", "how many digits after 8327", or is filling in a form field.

NOT FOR: Validating a number the user already has (use sweden_validate_bank_account).

PARAMETERS:
- clearing_number: 4 digits, or 5 for Swedbank 8xxxx-x (required).

RETURNS: Bank name, minimum and maximum digit count, and a one-line description.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "sweden_list_banks",
		Method:   "ListBanks",
		Title:    "List Swedish Banks",
		Category: "lookup",
		Country:  "sweden",
		Description: `List Swedish banks known to the clearing number registry.

USE WHEN: User asks "which banks are supported", "what clearing numbers does Nordea use", "which banks are Dataclearing only".

NOT FOR: Looking up a single clearing number (use sweden_resolve_clearing_number).

PARAMETERS:
- category: standard, dataclearing_only or historical (optional)
- query: Part of the bank name, case-insensitive (optional)

RETURNS: Banks with category, account length, checksum rule and clearing ranges.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ToolsByCountry returns the tools for one country.
func ToolsByCountry(country string) []ToolSpec {
	var result []ToolSpec
	for _, spec := range AllTools {
		if spec.Country == country {
			result = append(result, spec)
		}
	}
	return result
}

// ToolsByCategory returns the tools in one category.
func ToolsByCategory(category string) []ToolSpec {
	var result []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			result = append(result, spec)
		}
	}
	return result
}
