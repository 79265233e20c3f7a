package account

import "strings"

// Digits returns the ASCII digits of s in their original order and drops
// everything else. Non-ASCII digits are dropped too, never reinterpreted.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
