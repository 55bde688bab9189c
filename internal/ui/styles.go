package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorSuccess     = lipgloss.Color("#00E676") // Green — passing checks
	colorDanger      = lipgloss.Color("#FF5252") // Red — failing checks
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
)

// Status icons for check verdicts.
const (
	iconPass = "✓"
	iconFail = "✗"
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	stylePass = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleFail = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)
