package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nholm/sundial/internal/domain"
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

// HealthStyle returns the style for a system health percentage.
func HealthStyle(health int) lipgloss.Style {
	switch {
	case health >= 80:
		return StyleGreen
	case health >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// HealthIndicator renders a colored health badge such as "● 86%".
func HealthIndicator(health int) string {
	return HealthStyle(health).Render(fmt.Sprintf("● %d%%", health))
}

// DayTypeBadge renders a day type label in its accent color.
func DayTypeBadge(dt domain.DayType) string {
	label := strings.ToUpper(strings.ReplaceAll(string(dt), "_", " "))
	switch dt {
	case domain.DayTravel:
		return StyleBlue.Render(label)
	case domain.DaySick:
		return StyleRed.Render(label)
	case domain.DayHoliday:
		return StyleYellow.Render(label)
	case domain.DayDeepWork:
		return StylePurple.Render(label)
	case domain.DayWeekend:
		return StyleGreen.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// StreakBadge renders a streak count, dimmed at zero.
func StreakBadge(streak int) string {
	if streak <= 0 {
		return StyleDim.Render("—")
	}
	if streak >= 7 {
		return StyleYellow.Render(fmt.Sprintf("🔥 %d", streak))
	}
	return StyleGreen.Render(fmt.Sprintf("%d", streak))
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
