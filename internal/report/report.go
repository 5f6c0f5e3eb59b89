package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/caesar/internal/model"
)

const separator = "--------------------------------------------------"

// RenderResult prints an encrypt/decrypt result pair.
func RenderResult(w io.Writer, original, result, kind string) error {
	label := "Encrypted"
	if kind == model.OpDecrypt {
		label = "Decrypted"
	}
	if _, err := fmt.Fprintf(w, "Original:  %s\n", original); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %s\n", label, result); err != nil {
		return err
	}
	return nil
}

// RenderAnalysis prints character-class counts and the letter frequency chart.
func RenderAnalysis(w io.Writer, text string, stats model.TextStats) error {
	if _, err := fmt.Fprintf(w, "Text analysis for: %s\n", text); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}
	counts := []struct {
		label string
		value int
	}{
		{"Total characters", stats.TotalChars},
		{"Letters", stats.Letters},
		{"Uppercase", stats.Uppercase},
		{"Lowercase", stats.Lowercase},
		{"Digits", stats.Digits},
		{"Spaces", stats.Spaces},
		{"Punctuation", stats.Punctuation},
	}
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c.label, c.value); err != nil {
			return err
		}
	}
	if len(stats.Frequency) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderFrequency(w, stats, 0)
}

// RenderBruteForce prints all candidate decryptions, one per shift.
func RenderBruteForce(w io.Writer, text string, candidates []model.Candidate) error {
	if _, err := fmt.Fprintf(w, "Brute force decryption results for: %s\n", text); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(w, "Shift %2d: %s\n", c.Shift, c.Text); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints recorded operations as an aligned table.
func RenderHistory(w io.Writer, ops []model.Operation) error {
	if len(ops) == 0 {
		_, err := fmt.Fprintln(w, "No operations recorded.")
		return err
	}
	headers := []string{"ID", "When", "Kind", "Shift", "Length", "Source"}
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		shift := "-"
		if op.Kind == model.OpEncrypt || op.Kind == model.OpDecrypt {
			shift = fmt.Sprintf("%d", op.Shift)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", op.ID),
			op.CreatedAt.Local().Format(time.DateTime),
			op.Kind,
			shift,
			fmt.Sprintf("%d", op.InputLen),
			op.Source,
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true}
	lines := formatTable(headers, rows, rightAlign)
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return err
	}
	return nil
}
