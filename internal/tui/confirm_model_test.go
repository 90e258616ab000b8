package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m ConfirmModel, text string) ConfirmModel {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(ConfirmModel)
	}
	return m
}

func TestConfirmModelCapturesTypedText(t *testing.T) {
	m := NewConfirmModel("delete everything")
	m = typeText(m, "delete everything")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ConfirmModel)

	if m.Aborted() {
		t.Fatal("Aborted() = true after enter")
	}
	if m.Typed() != "delete everything" {
		t.Errorf("Typed() = %q, want %q", m.Typed(), "delete everything")
	}
}

func TestConfirmModelEsc(t *testing.T) {
	m := NewConfirmModel("phrase")
	m = typeText(m, "phr")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ConfirmModel)

	if !m.Aborted() {
		t.Error("Aborted() = false after esc, want true")
	}
}

func TestConfirmModelPreservesCase(t *testing.T) {
	m := NewConfirmModel("Phrase")
	m = typeText(m, "phrase")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ConfirmModel)

	// The model only captures text; the comparison happens in the pipeline,
	// so wrong casing must survive intact for the gate to reject it.
	if m.Typed() != "phrase" {
		t.Errorf("Typed() = %q, want %q", m.Typed(), "phrase")
	}
}
