package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/atlas"
	"github.com/abhisek/backroads/internal/ui/components"
	"github.com/abhisek/backroads/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	if g.errMsg != "" {
		return renderError(width, g.errMsg)
	}
	if g.sess == nil {
		return g.renderLoading(width)
	}
	if g.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return g.renderQuestion(width)
}

func (g *GameScreen) renderQuestion(width int) string {
	v := g.sess.View()

	var b strings.Builder

	// Status line: difficulty left, progress / score / streak right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + g.Title())

	streakStr := ""
	if streak := g.sess.Streak(); streak > 1 {
		streakStr = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("  %d in a row", streak))
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d%s",
			v.Number,
			v.Total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			g.sess.Score(),
			streakStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n")

	// Trip progress across the session.
	prog := components.NewProgressBar("", float64(v.Number-1)/float64(v.Total), false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prog.View()))
	b.WriteString("\n\n")

	// Clue label.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(v.ClueLabel))
	b.WriteString("\n\n")

	// Flag.
	if flag := atlas.FlagEmoji(v.FlagCode); flag != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(flag))
		b.WriteString("\n\n")
	}

	// Clue text: the capital on easy, the hint reveal on medium.
	if v.ClueText != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(v.ClueText))
		b.WriteString("\n\n")
	} else if v.HintAvailable {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Press H for a hint"))
		b.WriteString("\n\n")
	}

	// Fuel gauge.
	if v.Timed {
		gauge := components.NewFuelGauge(v.TimeRemaining, v.Duration, v.Warning, min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, gauge.View()))
		b.WriteString("\n\n")
	}

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.options.View()))

	// Reveal verdict.
	if v.Answered {
		b.WriteString("\n")
		switch {
		case v.TimedOut:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Out of fuel!"))
		case v.ChosenIndex == v.CorrectIndex:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		default:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
		}
		if v.TimedOut || v.ChosenIndex != v.CorrectIndex {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Answer: %s", v.Options[v.CorrectIndex])))
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to continue..."))
	}

	return b.String()
}

func (g *GameScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + g.spin.View() + " Plotting the route...")
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this run early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("An unfinished run is not recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, end run"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep driving"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
