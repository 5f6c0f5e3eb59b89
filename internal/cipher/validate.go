package cipher

import (
	"fmt"

	"github.com/verte-zerg/caesar/internal/model"
)

// Validation messages are part of the API contract and shared by every
// front end, so they keep their user-facing capitalization.

// ValidateText checks that text is non-empty.
func ValidateText(text string) error {
	if text == "" {
		return fmt.Errorf("Text is required")
	}
	return nil
}

// ValidateShift checks that k is within the user-facing shift range.
func ValidateShift(k int) error {
	if k < MinShift || k > MaxShift {
		return fmt.Errorf("Shift must be an integer between %d and %d", MinShift, MaxShift)
	}
	return nil
}

// ValidateOperation checks that op names a cipher operation.
func ValidateOperation(op string) error {
	if op != model.OpEncrypt && op != model.OpDecrypt {
		return fmt.Errorf("Operation must be either %q or %q", model.OpEncrypt, model.OpDecrypt)
	}
	return nil
}
