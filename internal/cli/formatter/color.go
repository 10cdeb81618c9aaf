package formatter

import (
	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierColor returns the lipgloss style corresponding to the given load tier.
func TierColor(tier domain.LoadTier) lipgloss.Style {
	switch tier {
	case domain.LoadOverload:
		return StyleRed
	case domain.LoadAlert:
		return StyleYellow
	case domain.LoadHealthy:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TierIndicator returns a colored load indicator string such as "● OVERLOAD".
func TierIndicator(tier domain.LoadTier) string {
	switch tier {
	case domain.LoadOverload:
		return StyleRed.Render("● OVERLOAD")
	case domain.LoadAlert:
		return StyleYellow.Render("● ALERT")
	case domain.LoadHealthy:
		return StyleGreen.Render("● HEALTHY")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PriorityLabel returns the priority colored by urgency.
func PriorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render("critical")
	case domain.PriorityHigh:
		return StyleYellow.Render("high")
	case domain.PriorityMedium:
		return StyleBlue.Render("medium")
	case domain.PriorityLow:
		return StyleDim.Render("low")
	default:
		return string(p)
	}
}
