// Package tui implements the interactive confirmation prompts: a checkbox
// list over the deletion candidates and a typed phrase confirmation.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Interactive runs the selection and confirmation prompts in the terminal.
// It satisfies the pipeline's Selector and Confirmer contracts.
type Interactive struct{}

// IsInteractive returns true when both stdin and stdout are terminals. The
// destructive flow refuses to run without a terminal because it cannot
// collect the confirmations.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Select presents the checklist and blocks until the user confirms or
// cancels.
func (Interactive) Select(names []string) ([]int, bool, error) {
	p := tea.NewProgram(NewSelectModel(names))
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("selection prompt failed: %w", err)
	}

	m, ok := final.(SelectModel)
	if !ok || m.Aborted() {
		return nil, false, nil
	}
	return m.Selected(), true, nil
}

// Confirm presents the typed confirmation prompt and returns the submitted
// text.
func (Interactive) Confirm(phrase string) (string, bool, error) {
	p := tea.NewProgram(NewConfirmModel(phrase))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	m, ok := final.(ConfirmModel)
	if !ok || m.Aborted() {
		return "", false, nil
	}
	return m.Typed(), true, nil
}
