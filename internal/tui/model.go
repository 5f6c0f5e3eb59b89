// Package tui provides the Bubble Tea interactive cipher menu.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/caesar/internal/cipher"
	"github.com/verte-zerg/caesar/internal/model"
	"github.com/verte-zerg/caesar/internal/report"
	"github.com/verte-zerg/caesar/internal/store"
)

type state int

const (
	stateMenu state = iota
	stateText
	stateShift
	stateResult
)

type menuItem struct {
	label string
	kind  string
}

var menuItems = []menuItem{
	{label: "Encrypt text", kind: model.OpEncrypt},
	{label: "Decrypt text", kind: model.OpDecrypt},
	{label: "Brute force decrypt", kind: model.OpBruteForce},
	{label: "Analyze text", kind: model.OpAnalyze},
	{label: "Quit", kind: ""},
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea interactive menu.
type Model struct {
	st *store.Store

	state  state
	cursor int
	kind   string

	textInput  textinput.Model
	shiftInput textinput.Model

	text   string
	result string
	errMsg string

	width  int
	height int
}

// NewModel constructs the interactive menu model. The store may be nil,
// in which case operations are not recorded.
func NewModel(st *store.Store) *Model {
	textInput := textinput.New()
	textInput.Placeholder = "text"

	shiftInput := textinput.New()
	shiftInput.Placeholder = fmt.Sprintf("%d-%d", cipher.MinShift, cipher.MaxShift)
	shiftInput.CharLimit = 3
	shiftInput.Width = 6

	return &Model{
		st:         st,
		textInput:  textInput,
		shiftInput: shiftInput,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateText:
			return m.updateText(msg)
		case stateShift:
			return m.updateShift(msg)
		case stateResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		item := menuItems[m.cursor]
		if item.kind == "" {
			return m, tea.Quit
		}
		m.kind = item.kind
		m.errMsg = ""
		m.textInput.Reset()
		m.state = stateText
		return m, m.textInput.Focus()
	}
	return m, nil
}

func (m *Model) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.backToMenu()
		return m, nil
	case tea.KeyEnter:
		text := m.textInput.Value()
		if err := cipher.ValidateText(text); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.text = text
		m.errMsg = ""
		if m.kind == model.OpEncrypt || m.kind == model.OpDecrypt {
			m.shiftInput.Reset()
			m.state = stateShift
			m.textInput.Blur()
			return m, m.shiftInput.Focus()
		}
		m.runOperation(0)
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) updateShift(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.backToMenu()
		return m, nil
	case tea.KeyEnter:
		shift, err := strconv.Atoi(strings.TrimSpace(m.shiftInput.Value()))
		if err != nil {
			m.errMsg = "Shift must be a number"
			return m, nil
		}
		if err := cipher.ValidateShift(shift); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.runOperation(shift)
		return m, nil
	}
	var cmd tea.Cmd
	m.shiftInput, cmd = m.shiftInput.Update(msg)
	return m, cmd
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc":
		m.backToMenu()
	}
	return m, nil
}

func (m *Model) backToMenu() {
	m.state = stateMenu
	m.errMsg = ""
	m.textInput.Blur()
	m.shiftInput.Blur()
}

func (m *Model) runOperation(shift int) {
	var buf bytes.Buffer
	var err error
	switch m.kind {
	case model.OpEncrypt:
		err = report.RenderResult(&buf, m.text, cipher.Encrypt(m.text, shift), m.kind)
	case model.OpDecrypt:
		err = report.RenderResult(&buf, m.text, cipher.Decrypt(m.text, shift), m.kind)
	case model.OpBruteForce:
		err = report.RenderBruteForce(&buf, m.text, cipher.BruteForce(m.text))
	case model.OpAnalyze:
		err = report.RenderAnalysis(&buf, m.text, cipher.Analyze(m.text))
	}
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.recordOperation(shift)
	m.result = buf.String()
	m.state = stateResult
	m.textInput.Blur()
	m.shiftInput.Blur()
}

func (m *Model) recordOperation(shift int) {
	if m.st == nil {
		return
	}
	op := model.Operation{
		CreatedAt: time.Now(),
		Kind:      m.kind,
		Shift:     shift,
		InputLen:  len([]rune(m.text)),
		Source:    model.SourceTUI,
	}
	if _, err := m.st.InsertOperation(context.Background(), op); err != nil {
		logErrf("failed to record operation: %v\n", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Caesar Cipher"))
	b.WriteString("\n\n")
	switch m.state {
	case stateMenu:
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + item.label))
			} else {
				b.WriteString(itemStyle.Render("  " + item.label))
			}
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("up/down: move  enter: select  q: quit"))
	case stateText:
		b.WriteString(itemStyle.Render(menuItems[m.cursorForKind()].label))
		b.WriteString("\n\n")
		b.WriteString("Text: ")
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("enter: continue  esc: back"))
	case stateShift:
		b.WriteString(itemStyle.Render(menuItems[m.cursorForKind()].label))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Shift (%d-%d): ", cipher.MinShift, cipher.MaxShift))
		b.WriteString(m.shiftInput.View())
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("enter: run  esc: back"))
	case stateResult:
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("enter: menu  q: quit"))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}

func (m *Model) cursorForKind() int {
	for i, item := range menuItems {
		if item.kind == m.kind {
			return i
		}
	}
	return 0
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
