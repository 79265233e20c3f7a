package bank

// Clearing number bounds. Four digit clearing numbers start at 1000; five
// digit ones are Swedbank's 8xxxx-x series.
const (
	MinClearingNumber = 1000
	MaxClearingNumber = 99999
)

// Resolve returns the bank owning the clearing number, scanning the table in
// ascending order of each entry's lowest clearing number.
func Resolve(clearing int) (Bank, bool) {
	if clearing < MinClearingNumber || clearing > MaxClearingNumber {
		return Bank{}, false
	}
	for _, r := range clearingRanges {
		if r.matches(clearing) {
			return r.bank, true
		}
	}
	return Bank{}, false
}

// All returns every registered bank in table order.
func All() []Bank {
	banks := make([]Bank, 0, len(clearingRanges))
	for _, r := range clearingRanges {
		banks = append(banks, r.bank)
	}
	return banks
}

// Ranges returns the clearing number spans assigned to b. The second result
// is true when membership also requires the clearing digits to pass mod10.
func Ranges(b Bank) ([]Span, bool) {
	for _, r := range clearingRanges {
		if r.bank == b {
			spans := make([]Span, len(r.spans))
			copy(spans, r.spans)
			return spans, r.check != nil
		}
	}
	return nil, false
}
