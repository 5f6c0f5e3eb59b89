package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/verte-zerg/caesar/internal/cipher"
	"github.com/verte-zerg/caesar/internal/model"
)

const defaultShift = 3

type cipherRequest struct {
	Text string `json:"text"`
	// Shift stays raw so a missing value can default to 3 while a
	// non-integer value is reported as a validation error.
	Shift     json.RawMessage `json:"shift"`
	Operation string          `json:"operation"`
}

type cipherResponse struct {
	Result       string      `json:"result"`
	OriginalText string      `json:"original_text"`
	Shift        int         `json:"shift"`
	Operation    string      `json:"operation"`
	Stats        cipherStats `json:"stats"`
}

type cipherStats struct {
	Original model.TextStats `json:"original"`
	Result   model.TextStats `json:"result"`
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Text     string          `json:"text"`
	Analysis model.TextStats `json:"analysis"`
}

type bruteForceResponse struct {
	OriginalText        string            `json:"original_text"`
	PossibleDecryptions []model.Candidate `json:"possible_decryptions"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) handleCipher(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req cipherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := cipher.ValidateText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	shift := defaultShift
	if len(req.Shift) > 0 && string(req.Shift) != "null" {
		var parsed int
		if err := json.Unmarshal(req.Shift, &parsed); err != nil {
			writeError(w, http.StatusBadRequest, "Shift must be an integer between 1 and 25")
			return
		}
		shift = parsed
	}
	if err := cipher.ValidateShift(shift); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	operation := req.Operation
	if operation == "" {
		operation = model.OpEncrypt
	}
	if err := cipher.ValidateOperation(operation); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var result string
	if operation == model.OpEncrypt {
		result = cipher.Encrypt(req.Text, shift)
	} else {
		result = cipher.Decrypt(req.Text, shift)
	}
	s.recordOperation(r, operation, shift, req.Text)

	writeJSON(w, http.StatusOK, cipherResponse{
		Result:       result,
		OriginalText: req.Text,
		Shift:        shift,
		Operation:    operation,
		Stats: cipherStats{
			Original: cipher.Analyze(req.Text),
			Result:   cipher.Analyze(result),
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := cipher.ValidateText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.recordOperation(r, model.OpAnalyze, 0, req.Text)
	writeJSON(w, http.StatusOK, analyzeResponse{
		Text:     req.Text,
		Analysis: cipher.Analyze(req.Text),
	})
}

func (s *Server) handleBruteForce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := cipher.ValidateText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.recordOperation(r, model.OpBruteForce, 0, req.Text)
	writeJSON(w, http.StatusOK, bruteForceResponse{
		OriginalText:        req.Text,
		PossibleDecryptions: cipher.BruteForce(req.Text),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: Version,
	})
}

func (s *Server) recordOperation(r *http.Request, kind string, shift int, text string) {
	if s.st == nil {
		return
	}
	op := model.Operation{
		CreatedAt: time.Now(),
		Kind:      kind,
		Shift:     shift,
		InputLen:  len([]rune(text)),
		Source:    model.SourceAPI,
	}
	if _, err := s.st.InsertOperation(r.Context(), op); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Msg("failed to record operation")
	}
}
