package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: template names, option names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorRed is used for the "removed" file status.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders, hints and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (template names, option names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles directory names and headings.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHint styles default-value hints in prompts.
	StyleHint = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StylePrompt styles interactive prompt labels.
	StylePrompt = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
)

// File status constants.
const (
	StatusCreated = "created"
	StatusRemoved = "removed"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFileLine renders "<status>  <path>" with the status right-padded to a fixed width.
func FormatFileLine(path, status string) string {
	const statusWidth = 8
	styled := StatusStyle(status).Width(statusWidth).Render(status)
	return styled + "  " + StyleNoun.Render(path)
}
