package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette used across the CLI.
var (
	// ColorCyan is used for identifiable nouns: setting names, paths, bookmarks.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks default values and copied files.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	colorGreen   = lipgloss.Color("82")
	colorRed     = lipgloss.Color("196")
	colorBoldRed = lipgloss.Color("204")
	colorCheck   = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDefault styles the pre-filled answer of a prompt.
	StyleDefault = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)

	// StyleDim styles structural chrome (constraints, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// File status constants for generation output.
const (
	StatusRendered = "rendered"
	StatusCopied   = "copied"
	StatusSkipped  = "skipped"
	statusFailed   = "failed"
)

// statusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusRendered:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusCopied:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatStatus renders a status word in its color.
func FormatStatus(status string) string {
	return statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(colorRed).Render("✘")
	return cross + " " + msg
}
