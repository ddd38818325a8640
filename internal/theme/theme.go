package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorCyan    = lipgloss.AdaptiveColor{Dark: "#66D9E8", Light: "#0987A0"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
)

// BoldStyle renders entity names and section headers.
var BoldStyle = lipgloss.NewStyle().Bold(true)

// SuccessStyle renders confirmation messages.
var SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

// ErrorStyle renders failure messages.
var ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

// WarnStyle renders cautionary output such as pending inbox counts.
var WarnStyle = lipgloss.NewStyle().Foreground(ColorYellow)

// MutedStyle renders secondary detail lines (ids, dates, notes).
var MutedStyle = lipgloss.NewStyle().Foreground(ColorGray)

// ProjectRefStyle renders project and folder references next to a task.
var ProjectRefStyle = lipgloss.NewStyle().Foreground(ColorCyan)

// TagStyle renders tag names.
var TagStyle = lipgloss.NewStyle().Foreground(ColorMagenta)

// FlagStyle renders the flagged marker.
var FlagStyle = lipgloss.NewStyle().Foreground(ColorYellow)

// StatusStyle returns a color-coded style for a normalized status.
func StatusStyle(status model.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch status {
	case model.StatusActive:
		return base.Foreground(ColorGreen)
	case model.StatusOnHold:
		return base.Foreground(ColorYellow)
	case model.StatusDropped:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}
