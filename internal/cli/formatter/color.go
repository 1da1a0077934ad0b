package formatter

import (
	"fmt"
	"strings"

	"github.com/arothstein/ritual/internal/domain"
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

// HabitStatusStyle returns the style for a single habit's day status.
func HabitStatusStyle(status domain.HabitDayStatus) lipgloss.Style {
	switch status {
	case domain.HabitComplete:
		return StyleGreen
	case domain.HabitMissed:
		return StyleRed
	default:
		return StyleDim
	}
}

// HabitStatusIndicator returns a colored marker such as "✓ complete".
func HabitStatusIndicator(status domain.HabitDayStatus) string {
	switch status {
	case domain.HabitComplete:
		return StyleGreen.Render("✓ complete")
	case domain.HabitMissed:
		return StyleRed.Render("✗ missed")
	default:
		return StyleDim.Render("· unlogged")
	}
}

// DayStatusStyle returns the style for a whole-day rollup status.
func DayStatusStyle(status domain.DayStatus) lipgloss.Style {
	switch status {
	case domain.DayComplete:
		return StyleGreen
	case domain.DayPartial:
		return StyleYellow
	case domain.DayIncomplete:
		return StyleRed
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// TruncID shortens an opaque id for display.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
