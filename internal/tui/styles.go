package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	styleScrambled = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(1, 2)
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	styleHint      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCard      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(1, 2)
)
