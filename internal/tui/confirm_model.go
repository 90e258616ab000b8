package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is the Bubble Tea model for the typed confirmation. The user
// must type the phrase back exactly; the comparison itself happens in the
// pipeline, this model only captures the text.
type ConfirmModel struct {
	phrase  string
	input   textinput.Model
	done    bool
	aborted bool
}

// NewConfirmModel creates the confirmation prompt for phrase.
func NewConfirmModel(phrase string) ConfirmModel {
	ti := textinput.New()
	ti.Placeholder = phrase
	ti.CharLimit = len(phrase) + 16
	ti.Width = len(phrase) + 8
	ti.Focus()

	return ConfirmModel{
		phrase: phrase,
		input:  ti,
	}
}

// Aborted reports whether the user cancelled the prompt.
func (m ConfirmModel) Aborted() bool {
	return m.aborted
}

// Typed returns the text the user submitted.
func (m ConfirmModel) Typed() string {
	return m.input.Value()
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ConfirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(fmt.Sprintf("Double confirm, please type '%s'", m.phrase)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[enter] submit  [esc] cancel"))
	b.WriteString("\n")
	return b.String()
}
