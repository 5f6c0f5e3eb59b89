package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressKey(t *testing.T, m *Model, msg tea.KeyMsg) *Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(*Model)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	return next
}

func pressEnter(t *testing.T, m *Model) *Model {
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func typeRunes(t *testing.T, m *Model, s string) *Model {
	t.Helper()
	for _, r := range s {
		m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := NewModel(nil)
	if m.cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", m.cursor)
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("expected cursor at 2, got %d", m.cursor)
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", m.cursor)
	}
}

func TestEncryptFlow(t *testing.T) {
	m := NewModel(nil)
	m = pressEnter(t, m)
	if m.state != stateText {
		t.Fatalf("expected text state, got %v", m.state)
	}
	m = typeRunes(t, m, "abc")
	m = pressEnter(t, m)
	if m.state != stateShift {
		t.Fatalf("expected shift state, got %v", m.state)
	}
	m = typeRunes(t, m, "1")
	m = pressEnter(t, m)
	if m.state != stateResult {
		t.Fatalf("expected result state, got %v", m.state)
	}
	if !strings.Contains(m.result, "Encrypted: bcd") {
		t.Fatalf("unexpected result:\n%s", m.result)
	}
	// Enter returns to the menu.
	m = pressEnter(t, m)
	if m.state != stateMenu {
		t.Fatalf("expected menu state, got %v", m.state)
	}
}

func TestAnalyzeSkipsShiftPrompt(t *testing.T) {
	m := NewModel(nil)
	for i := 0; i < 3; i++ {
		m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = pressEnter(t, m)
	if m.state != stateText {
		t.Fatalf("expected text state, got %v", m.state)
	}
	m = typeRunes(t, m, "Ab1 .")
	m = pressEnter(t, m)
	if m.state != stateResult {
		t.Fatalf("expected result state, got %v", m.state)
	}
	if !strings.Contains(m.result, "Total characters: 5") {
		t.Fatalf("unexpected result:\n%s", m.result)
	}
}

func TestInvalidShiftReprompts(t *testing.T) {
	m := NewModel(nil)
	m = pressEnter(t, m)
	m = typeRunes(t, m, "abc")
	m = pressEnter(t, m)
	m = typeRunes(t, m, "99")
	m = pressEnter(t, m)
	if m.state != stateShift {
		t.Fatalf("expected to stay in shift state, got %v", m.state)
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message for out-of-range shift")
	}
}

func TestEmptyTextRejected(t *testing.T) {
	m := NewModel(nil)
	m = pressEnter(t, m)
	m = pressEnter(t, m)
	if m.state != stateText {
		t.Fatalf("expected to stay in text state, got %v", m.state)
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message for empty text")
	}
}
