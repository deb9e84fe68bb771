package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: variant names, file paths, app names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "pass" check status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skip" check status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "fail" check status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (variant names, file paths, app names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, descriptions, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Check status constants.
const (
	StatusPass = "pass"
	StatusSkip = "skip"
	StatusFail = "fail"
)

// StatusStyle returns the lipgloss style for a given check status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPass:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkip:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFail:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minCheckColumnWidth is the minimum width for the check name column before
// the status suffix, so status words align consistently.
const minCheckColumnWidth = 32

// FormatCheckLine renders a check identifier with a right-aligned,
// color-coded status suffix.
//
// Format: c:<variant/check>  <status>
func FormatCheckLine(variant, check, status string) string {
	path := fmt.Sprintf("%s/%s", variant, check)

	padding := minCheckColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("c:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
