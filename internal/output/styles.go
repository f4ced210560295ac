package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: crate names, versions, tags.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "released" outcome.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "already published" outcome.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles mapping domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (crate names, versions, tag names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Outcome constants for a trigger run.
const (
	OutcomePublished = "already published"
	OutcomeReleased  = "released"
	OutcomeSkipped   = "skipped (dry run)"
	OutcomeFailed    = "failed"
)

// OutcomeStyle returns the lipgloss style for a given run outcome.
// Unknown outcomes return an unstyled default.
func OutcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case OutcomePublished:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case OutcomeReleased:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case OutcomeSkipped:
		return lipgloss.NewStyle().Faint(true)
	case OutcomeFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatOutcomeLine renders a crate@version with its run outcome.
//
// Format: <crate>@<version>  <outcome>
func FormatOutcomeLine(crate, version, outcome string) string {
	noun := StyleNoun.Render(crate + "@" + version)
	return noun + "  " + OutcomeStyle(outcome).Render(outcome)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
