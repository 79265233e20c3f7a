package account

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"digits only", "9420", "9420"},
		{"spaces", " 94 20 ", "9420"},
		{"hyphen and comma", "8424-4, 983 189 224-6", "842449831892246"},
		{"letters", "SE-9420x", "9420"},
		{"non-ascii digits dropped", "9٤20", "920"},
		{"fullwidth digits dropped", "９420", "420"},
		{"empty", "", ""},
		{"no digits", "abc-_.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Digits(tt.input))
		})
	}
}

// Inserting non-digit noise anywhere must not change the extracted digits.
func TestDigits_NoiseInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	noise := []string{" ", "-", ".", ",", "a", "Z", "/", "ö", "\t", "٣"}

	for i := 0; i < 500; i++ {
		var clean strings.Builder
		for j := 0; j < rng.Intn(15); j++ {
			clean.WriteByte(byte('0' + rng.Intn(10)))
		}
		base := clean.String()

		var noisy strings.Builder
		for j := 0; j <= len(base); j++ {
			for k := rng.Intn(3); k > 0; k-- {
				noisy.WriteString(noise[rng.Intn(len(noise))])
			}
			if j < len(base) {
				noisy.WriteByte(base[j])
			}
		}

		assert.Equal(t, Digits(base), Digits(noisy.String()), "noisy input %q", noisy.String())
	}
}
