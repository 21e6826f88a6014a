// Package style provides shared UI styling primitives including the color
// palette used for temperatures and weather conditions across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// Base palette.
var (
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Grey   = lipgloss.Color("#7D7D7D")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Orange = lipgloss.Color("#F97316")
	Blue   = lipgloss.Color("#3B82F6")
	Cyan   = lipgloss.Color("#22D3EE")
	Purple = lipgloss.Color("#C026D3")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Temperature returns the color for a temperature in degrees Celsius,
// warm shades for heat and cold shades below freezing.
func Temperature(celsius float64) lipgloss.Color {
	switch {
	case celsius >= 30:
		return Red
	case celsius >= 20:
		return Orange
	case celsius >= 10:
		return Yellow
	case celsius >= 0:
		return Green
	case celsius >= -10:
		return Cyan
	default:
		return Blue
	}
}

// Condition returns the color for a weather condition class.
func Condition(c domain.Condition) lipgloss.Color {
	switch c {
	case domain.ConditionClear:
		return Yellow
	case domain.ConditionCloudy:
		return Slate
	case domain.ConditionFog:
		return Grey
	case domain.ConditionRain:
		return Blue
	case domain.ConditionSnow:
		return Cyan
	case domain.ConditionThunder:
		return Purple
	default:
		return White
	}
}
