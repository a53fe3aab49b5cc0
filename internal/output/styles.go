package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: feature names, paths, template names.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" file status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" file status.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for the "failed" status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (feature names, paths, template names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (tree connectors, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusPlanned     = "planned"
	statusFailed      = "failed"
)

// statusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusPlanned:
		return lipgloss.NewStyle().Faint(true)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column before the
// status suffix, so status words align.
const minPathColumnWidth = 64

// FormatFileLine renders a file path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) +
		strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
