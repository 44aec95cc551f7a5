package render

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW     = 11 // width of each step column in characters
	labelW    = 7  // visual width of qubit label area
	gateNameW = 5  // width of gate name inside box
	gateBoxW  = 7  // ┤ + gateNameW + ├ = 1 + 5 + 1
)

// Lipgloss styles for the diagram.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	cursorColStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff9e64")).
			Bold(true)

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
