package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/store"
	"github.com/abhisek/backroads/internal/ui/theme"
)

// Highway-sign title block.
const signTitleFull = `╔══════════════════════════════════╗
║                                  ║
║         B A C K R O A D S        ║
║                                  ║
║      a capital road trip quiz    ║
║                                  ║
╚══════════════════════════════════╝
                ║  ║
                ║  ║`

const signTitleCompact = "B · A · C · K · R · O · A · D · S"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(signTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(signTitleFull))
}

// renderStatsBar renders the trip totals in a bordered box matching
// content width. A nil stats means no history database.
func renderStatsBar(stats *store.Stats, cw int, compact bool) string {
	tripStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	hitStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case stats == nil:
		line = dimStyle.Render("history unavailable")
	case stats.Games == 0:
		line = dimStyle.Render("no trips on record yet")
	case compact:
		line = fmt.Sprintf("%s %s %s",
			tripStyle.Render(fmt.Sprintf("⌖%d", stats.Games)),
			hitStyle.Render(fmt.Sprintf("✓%d/%d", stats.Correct, stats.Questions)),
			streakStyle.Render(fmt.Sprintf("↯%d", stats.BestStreak)),
		)
	default:
		line = fmt.Sprintf("%s  %s  %s",
			tripStyle.Render(fmt.Sprintf("⌖ %d TRIPS", stats.Games)),
			hitStyle.Render(fmt.Sprintf("✓ %d/%d CORRECT", stats.Correct, stats.Questions)),
			streakStyle.Render(fmt.Sprintf("↯ BEST STREAK %d", stats.BestStreak)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderSignFrame wraps content in a double-border frame, centered
// vertically and horizontally within the given dimensions.
func renderSignFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
