// Package checksum implements the weighted digit-sum checks used by Swedish
// banks: mod10 (Luhn) and mod11.
//
// Both functions take the digits as typed by a user, most significant first,
// and weigh them starting from the least significant end.
package checksum

// Mod10 reports whether digits pass the mod10 (Luhn) check.
// Weights alternate 1, 2, 1, 2, ... from the rightmost digit. Products of 10
// or more are reduced by 9 before summing. The sum must be divisible by 10.
//
// digits must contain only '0'-'9'. An empty string passes.
func Mod10(digits string) bool {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// Mod11 reports whether digits pass the mod11 check.
// Weights cycle 1, 2, ..., 10 from the rightmost digit with no reduction.
// The sum must be divisible by 11.
//
// digits must contain only '0'-'9'. An empty string passes.
func Mod11(digits string) bool {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		sum += d * (i%10 + 1)
	}
	return sum%11 == 0
}
