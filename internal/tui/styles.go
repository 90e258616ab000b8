package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	uncheckedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)
