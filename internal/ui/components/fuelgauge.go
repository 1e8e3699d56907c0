package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/ui/theme"
)

// FuelGauge renders the countdown as a draining fuel bar. It turns red
// once the warning threshold is crossed.
type FuelGauge struct {
	Remaining int
	Duration  int
	Warning   bool
	Width     int
}

// NewFuelGauge creates a gauge for a countdown of duration seconds.
func NewFuelGauge(remaining, duration int, warning bool, width int) FuelGauge {
	return FuelGauge{
		Remaining: remaining,
		Duration:  duration,
		Warning:   warning,
		Width:     width,
	}
}

// View renders the gauge.
func (g FuelGauge) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("FUEL") + "  "
	counter := fmt.Sprintf("  %2ds", g.Remaining)

	barWidth := g.Width - lipgloss.Width(label) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if g.Duration > 0 {
		filled = barWidth * g.Remaining / g.Duration
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fillStyle := theme.FuelFilled
	counterStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if g.Warning {
		fillStyle = theme.FuelWarning
		counterStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	bar := fillStyle.Render(strings.Repeat(" ", filled)) +
		theme.FuelEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + bar + counterStyle.Render(counter)
}
