package cipher

import (
	"testing"
	"unicode"
)

func TestEncryptHelloWorld(t *testing.T) {
	got := Encrypt("Hello, World!", 3)
	if got != "Khoor, Zruog!" {
		t.Fatalf("unexpected ciphertext: %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	text := "The quick brown Fox jumps over 13 lazy dogs!"
	for k := 0; k <= 25; k++ {
		if got := Decrypt(Encrypt(text, k), k); got != text {
			t.Fatalf("round trip failed for shift %d: %q", k, got)
		}
	}
}

func TestShiftPeriodicity(t *testing.T) {
	text := "Attack at dawn"
	if got := Shift(text, 0); got != text {
		t.Fatalf("shift 0 changed text: %q", got)
	}
	if got := Shift(text, 26); got != text {
		t.Fatalf("shift 26 changed text: %q", got)
	}
	if got, want := Shift(text, 29), Shift(text, 3); got != want {
		t.Fatalf("shift 29 != shift 3: %q vs %q", got, want)
	}
}

func TestShiftNegative(t *testing.T) {
	if got := Shift("abc", -1); got != "zab" {
		t.Fatalf("unexpected result for shift -1: %q", got)
	}
	if got, want := Shift("Khoor", -3), "Hello"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := Shift("abc", -27), Shift("abc", 25); got != want {
		t.Fatalf("shift -27 != shift 25: %q vs %q", got, want)
	}
}

func TestShiftPreservesClassAndCase(t *testing.T) {
	text := "Hello, Wörld 42!\tÉnd"
	for _, k := range []int{1, 7, 13, 25, -4, 40} {
		shifted := []rune(Shift(text, k))
		original := []rune(text)
		if len(shifted) != len(original) {
			t.Fatalf("shift %d changed length: %d vs %d", k, len(shifted), len(original))
		}
		for i, r := range original {
			isASCIILetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			if !isASCIILetter {
				if shifted[i] != r {
					t.Fatalf("shift %d changed non-ASCII-letter %q to %q", k, r, shifted[i])
				}
				continue
			}
			if unicode.IsUpper(r) != unicode.IsUpper(shifted[i]) {
				t.Fatalf("shift %d changed case at position %d: %q -> %q", k, i, r, shifted[i])
			}
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze("")
	if stats.TotalChars != 0 || stats.Letters != 0 || stats.Uppercase != 0 ||
		stats.Lowercase != 0 || stats.Digits != 0 || stats.Spaces != 0 ||
		stats.Punctuation != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
	if len(stats.Frequency) != 0 {
		t.Fatalf("expected empty frequency map, got %v", stats.Frequency)
	}
}

func TestAnalyzeMixed(t *testing.T) {
	stats := Analyze("Ab1 .")
	if stats.TotalChars != 5 {
		t.Fatalf("total chars: got %d", stats.TotalChars)
	}
	if stats.Letters != 2 || stats.Uppercase != 1 || stats.Lowercase != 1 {
		t.Fatalf("letter counts: %+v", stats)
	}
	if stats.Digits != 1 || stats.Spaces != 1 || stats.Punctuation != 1 {
		t.Fatalf("class counts: %+v", stats)
	}
	if stats.Frequency["a"] != 1 || stats.Frequency["b"] != 1 || len(stats.Frequency) != 2 {
		t.Fatalf("frequency: %v", stats.Frequency)
	}
}

func TestAnalyzeNonASCIILetters(t *testing.T) {
	// Non-ASCII letters count as letters but are never shifted.
	stats := Analyze("édé")
	if stats.Letters != 3 {
		t.Fatalf("expected 3 letters, got %d", stats.Letters)
	}
	if stats.Frequency["é"] != 2 || stats.Frequency["d"] != 1 {
		t.Fatalf("frequency: %v", stats.Frequency)
	}
	if got := Shift("édé", 5); got != "éié" {
		t.Fatalf("expected non-ASCII letters untouched: %q", got)
	}
}

func TestBruteForce(t *testing.T) {
	candidates := BruteForce("Khoor")
	if len(candidates) != 25 {
		t.Fatalf("expected 25 candidates, got %d", len(candidates))
	}
	for i, c := range candidates {
		if c.Shift != i+1 {
			t.Fatalf("candidates out of order at index %d: shift %d", i, c.Shift)
		}
	}
	if candidates[2].Text != "Hello" {
		t.Fatalf("expected shift 3 to recover %q, got %q", "Hello", candidates[2].Text)
	}
}

func TestValidateShift(t *testing.T) {
	for _, k := range []int{1, 13, 25} {
		if err := ValidateShift(k); err != nil {
			t.Fatalf("shift %d should be valid: %v", k, err)
		}
	}
	for _, k := range []int{0, 26, -3, 100} {
		if err := ValidateShift(k); err == nil {
			t.Fatalf("shift %d should be rejected", k)
		}
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText(""); err == nil {
		t.Fatalf("empty text should be rejected")
	}
	if err := ValidateText("a"); err != nil {
		t.Fatalf("non-empty text should be valid: %v", err)
	}
}

func TestValidateOperation(t *testing.T) {
	for _, op := range []string{"encrypt", "decrypt"} {
		if err := ValidateOperation(op); err != nil {
			t.Fatalf("operation %q should be valid: %v", op, err)
		}
	}
	for _, op := range []string{"", "rot13", "Encrypt"} {
		if err := ValidateOperation(op); err == nil {
			t.Fatalf("operation %q should be rejected", op)
		}
	}
}
