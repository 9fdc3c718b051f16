package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — accents and the active scale
	colorDanger  = lipgloss.Color("#FF5252") // Red — parse and conversion errors
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized text
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorSurface = lipgloss.Color("#1E1E2E") // Dark surface — title bar bg
)

// Selection indicator prepended to the active scale row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleScaleName = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleValue = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)
