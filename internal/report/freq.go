package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/caesar/internal/model"
)

const (
	minBarWidth         = 10
	maxBarWidth         = 50
	barRune             = '#'
	colorReset          = "\x1b[0m"
	colorCyan           = "\x1b[36m"
	terminalWidthBackup = 80
)

// RenderFrequency prints a sorted per-letter frequency bar chart. Bars are
// scaled to the available width; width <= 0 autosizes to the terminal.
func RenderFrequency(w io.Writer, stats model.TextStats, totalWidth int) error {
	if len(stats.Frequency) == 0 {
		return nil
	}
	letters := make([]string, 0, len(stats.Frequency))
	maxCount := 0
	for letter, count := range stats.Frequency {
		letters = append(letters, letter)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Strings(letters)

	if totalWidth <= 0 {
		totalWidth = terminalWidth()
	}
	countWidth := len(fmt.Sprintf("%d", maxCount))
	// "  x: 12 " prefix before the bar.
	barWidth := totalWidth - countWidth - 6
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}

	useColor := shouldUseColor(w)
	if _, err := fmt.Fprintln(w, "Letter frequency:"); err != nil {
		return err
	}
	for _, letter := range letters {
		count := stats.Frequency[letter]
		length := int(math.Round(float64(count) / float64(maxCount) * float64(barWidth)))
		if length < 1 {
			length = 1
		}
		bar := strings.Repeat(string(barRune), length)
		if useColor {
			bar = colorCyan + bar + colorReset
		}
		if _, err := fmt.Fprintf(w, "  %s: %*d %s\n", letter, countWidth, count, bar); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
