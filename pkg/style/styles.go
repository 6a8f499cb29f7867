package style

import (
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	MovedStyle = lipgloss.NewStyle().
			Foreground(MovedColor).
			Bold(true)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(SkippedColor)

	FailedStyle = lipgloss.NewStyle().
			Foreground(FailedColor).
			Bold(true)

	DryRunStyle = lipgloss.NewStyle().
			Foreground(DryRunColor).
			Italic(true)
)

// Indicators per outcome status
var (
	MovedIndicator   = "✓"
	SkippedIndicator = "○"
	FailedIndicator  = "✗"
)

// ForStatus returns the style used to render an outcome status
func ForStatus(status types.OutcomeStatus) lipgloss.Style {
	switch status {
	case types.StatusMoved:
		return MovedStyle
	case types.StatusFailed:
		return FailedStyle
	case types.StatusSkipped:
		return SkippedStyle
	}
	return MutedStyle
}

// Indicator returns the symbol for an outcome status
func Indicator(status types.OutcomeStatus) string {
	switch status {
	case types.StatusMoved:
		return MovedIndicator
	case types.StatusFailed:
		return FailedIndicator
	}
	return SkippedIndicator
}

// StatusLabel renders "✓ moved" style labels, colored when styled is true
func StatusLabel(status types.OutcomeStatus, styled bool) string {
	label := Indicator(status) + " " + string(status)
	if !styled {
		return label
	}
	return ForStatus(status).Render(label)
}
