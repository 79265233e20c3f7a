package sweden

import "github.com/olgasafonova/swedish-bank-account-mcp-server/bank"

// BankSummary is a bank representation for MCP responses.
type BankSummary struct {
	Name           string      `json:"name"`
	Label          string      `json:"label"` // distinguishes variants, e.g. "Nordea (Personkonto)"
	Category       string      `json:"category"`
	CategoryNote   string      `json:"category_note,omitempty"`
	AccountLength  bank.Length `json:"account_length"`
	Rule           string      `json:"rule"`
	ClearingRanges []string    `json:"clearing_ranges,omitempty"`
	CheckDigit     bool        `json:"clearing_check_digit,omitempty"` // clearing number itself must pass mod10
}

func newBankSummary(b bank.Bank) BankSummary {
	return BankSummary{
		Name:          b.Name(),
		Label:         b.String(),
		Category:      b.Category().String(),
		CategoryNote:  b.Category().Guidance(),
		AccountLength: b.AccountLength(),
		Rule:          b.Rule().String(),
	}
}

// withRanges adds the clearing number spans owned by the bank.
func (s BankSummary) withRanges(b bank.Bank) BankSummary {
	spans, check := bank.Ranges(b)
	s.ClearingRanges = make([]string, 0, len(spans))
	for _, sp := range spans {
		s.ClearingRanges = append(s.ClearingRanges, sp.String())
	}
	s.CheckDigit = check
	return s
}

// parseCategory maps the wire name of a category back to bank.Category.
func parseCategory(name string) (bank.Category, bool) {
	for _, c := range []bank.Category{bank.Standard, bank.DataclearingOnly, bank.Historical} {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
