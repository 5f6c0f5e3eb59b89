// Package cipher implements the Caesar shift engine and text analysis.
package cipher

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/caesar/internal/model"
)

const alphabetSize = 26

// Shift bounds enforced by user-facing entry points. Shift itself accepts
// any integer.
const (
	MinShift = 1
	MaxShift = 25
)

// Punctuation is the fixed set of ASCII punctuation symbols counted by Analyze.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Shift applies a Caesar shift of k positions to the ASCII letters in text.
// Case is preserved and non-letters pass through unchanged. The shift is
// reduced with a Euclidean modulo, so any integer k is valid, including
// negative values and values beyond 25.
func Shift(text string, k int) string {
	offset := ((k % alphabetSize) + alphabetSize) % alphabetSize
	if offset == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+rune(offset))%alphabetSize)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+rune(offset))%alphabetSize)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encrypt shifts text forward by k positions.
func Encrypt(text string, k int) string {
	return Shift(text, k)
}

// Decrypt shifts text backward by k positions.
func Decrypt(text string, k int) string {
	return Shift(text, -k)
}

// Analyze computes character-class counts and per-letter frequency for text.
// Letter detection is Unicode-aware, so letters the shift functions leave
// untouched are still counted.
func Analyze(text string) model.TextStats {
	stats := model.TextStats{Frequency: map[string]int{}}
	for _, r := range text {
		stats.TotalChars++
		if unicode.IsLetter(r) {
			stats.Letters++
			stats.Frequency[strings.ToLower(string(r))]++
		}
		if unicode.IsUpper(r) {
			stats.Uppercase++
		}
		if unicode.IsLower(r) {
			stats.Lowercase++
		}
		if unicode.IsDigit(r) {
			stats.Digits++
		}
		if unicode.IsSpace(r) {
			stats.Spaces++
		}
		if r < 128 && strings.ContainsRune(Punctuation, r) {
			stats.Punctuation++
		}
	}
	return stats
}

// BruteForce returns the decryption of text under every non-zero shift,
// ordered by ascending shift. Picking the readable candidate is left to
// the caller.
func BruteForce(text string) []model.Candidate {
	candidates := make([]model.Candidate, 0, MaxShift)
	for k := MinShift; k <= MaxShift; k++ {
		candidates = append(candidates, model.Candidate{
			Shift: k,
			Text:  Decrypt(text, k),
		})
	}
	return candidates
}
