package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// SelectModel is the Bubble Tea model for the deletion candidate checklist.
// Every entry starts selected; the user prunes the list before confirming.
type SelectModel struct {
	names        []string
	selected     []bool
	cursor       int
	windowWidth  int
	windowHeight int
	confirmed    bool
	aborted      bool
}

// NewSelectModel creates a checklist over the candidate names with every
// entry selected by default.
func NewSelectModel(names []string) SelectModel {
	selected := make([]bool, len(names))
	for i := range selected {
		selected[i] = true
	}
	return SelectModel{
		names:        names,
		selected:     selected,
		windowWidth:  80,
		windowHeight: 24,
	}
}

// Aborted reports whether the user cancelled the prompt.
func (m SelectModel) Aborted() bool {
	return m.aborted
}

// Selected returns the indices of the entries still checked when the user
// confirmed.
func (m SelectModel) Selected() []int {
	var indices []int
	for i, on := range m.selected {
		if on {
			indices = append(indices, i)
		}
	}
	return indices
}

// Init implements tea.Model
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m SelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		m.confirmed = true
		return m, tea.Quit

	case " ":
		if len(m.names) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
		return m, nil

	case "a":
		for i := range m.selected {
			m.selected[i] = true
		}
		return m, nil

	case "n":
		for i := range m.selected {
			m.selected[i] = false
		}
		return m, nil

	case "j", "down":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if len(m.names) > 0 {
			m.cursor = len(m.names) - 1
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m SelectModel) View() string {
	if m.confirmed || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("These repositories will be deleted"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[space] toggle  [a] all  [n] none  [enter] confirm  [q/esc] cancel"))
	b.WriteString("\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		check := uncheckedStyle.Render("[ ]")
		style := dimItemStyle
		if m.selected[i] {
			check = checkedStyle.Render("[x]")
			style = itemStyle
		}

		name := runewidth.Truncate(m.names[i], m.maxNameWidth(), "…")
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, style.Render(name)))
	}

	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d of %d selected", len(m.Selected()), len(m.names))))
	b.WriteString("\n")
	return b.String()
}

// visibleRange windows the list so it fits the terminal height, keeping the
// cursor in view.
func (m SelectModel) visibleRange() (int, int) {
	const chrome = 6 // title, help, blank lines, count
	visible := m.windowHeight - chrome
	if visible < 1 {
		visible = 1
	}
	if len(m.names) <= visible {
		return 0, len(m.names)
	}

	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.names) {
		end = len(m.names)
		start = end - visible
	}
	return start, end
}

func (m SelectModel) maxNameWidth() int {
	const prefix = 6 // cursor plus checkbox
	w := m.windowWidth - prefix
	if w < 10 {
		w = 10
	}
	return w
}
