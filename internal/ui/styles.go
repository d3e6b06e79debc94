package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#98971A")
	colorYellow = lipgloss.Color("#D79921")
	colorBlue   = lipgloss.Color("#458588")
	colorRed    = lipgloss.Color("#CC241D")
	colorSubtle = lipgloss.Color("#665C54")
	colorFG     = lipgloss.Color("#EBDBB2")

	stylePath = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	styleDir = lipgloss.NewStyle().
			Foreground(colorBlue)

	styleFile = lipgloss.NewStyle().
			Foreground(colorFG)

	styleDim = lipgloss.NewStyle().
			Foreground(colorSubtle)

	styleHint = lipgloss.NewStyle().
			Foreground(colorSubtle)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)
)
