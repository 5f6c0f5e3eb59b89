// Package model defines shared data structures.
package model

import "time"

// TextStats is a snapshot of character-class statistics for a single text.
type TextStats struct {
	TotalChars  int            `json:"total_chars"`
	Letters     int            `json:"letters"`
	Uppercase   int            `json:"uppercase"`
	Lowercase   int            `json:"lowercase"`
	Digits      int            `json:"digits"`
	Spaces      int            `json:"spaces"`
	Punctuation int            `json:"punctuation"`
	Frequency   map[string]int `json:"letter_frequency"`
}

// Candidate is one brute-force decryption attempt.
type Candidate struct {
	Shift int    `json:"shift"`
	Text  string `json:"result"`
}

// Operation kinds recorded in history.
const (
	OpEncrypt    = "encrypt"
	OpDecrypt    = "decrypt"
	OpBruteForce = "brute-force"
	OpAnalyze    = "analyze"
)

// Operation sources recorded in history.
const (
	SourceCLI = "cli"
	SourceTUI = "tui"
	SourceAPI = "api"
)

// Operation records a single cipher operation. Only metadata is kept;
// input and result text are never persisted.
type Operation struct {
	ID        int64
	CreatedAt time.Time
	Kind      string
	Shift     int
	InputLen  int
	Source    string
}

// HistoryFilter defines filters for listing recorded operations.
type HistoryFilter struct {
	Kind  string
	Since *time.Time
	Last  int
}
