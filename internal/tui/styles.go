package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("25")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	selectedHeaderStyle = headerStyle.
				Underline(true).
				Foreground(lipgloss.Color("39"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("25")).
			Padding(0, 2).
			MarginRight(1)

	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 3)
)
