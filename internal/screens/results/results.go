package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/quiz"
	"github.com/abhisek/backroads/internal/router"
	"github.com/abhisek/backroads/internal/screen"
	"github.com/abhisek/backroads/internal/store"
	"github.com/abhisek/backroads/internal/ui/components"
	"github.com/abhisek/backroads/internal/ui/layout"
	"github.com/abhisek/backroads/internal/ui/theme"
)

// newGameFunc breaks the import cycle with the game screen: the app
// wires it to game.New at startup.
type newGameFunc func(cfg quiz.Config, d quiz.Difficulty, games store.GameRepo) screen.Screen

// NewGame is set by the app package before the first screen is built.
var NewGame newGameFunc

// ResultsScreen shows the final score of a finished run.
type ResultsScreen struct {
	cfg        quiz.Config
	difficulty quiz.Difficulty
	summary    quiz.Summary
	bestStreak int
	games      store.GameRepo
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a finished run.
func New(cfg quiz.Config, d quiz.Difficulty, summary quiz.Summary, bestStreak int, games store.GameRepo) *ResultsScreen {
	return &ResultsScreen{
		cfg:        cfg,
		difficulty: d,
		summary:    summary,
		bestStreak: bestStreak,
		games:      games,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Trip Complete"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Drive again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "r":
		if NewGame == nil {
			return r, nil
		}
		next := NewGame(r.cfg, r.difficulty, r.games)
		return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	sum := r.summary

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Trip complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", sum.Score, sum.Total)))
	b.WriteString("\n\n")

	barWidth := width - 8
	if barWidth > 50 {
		barWidth = 50
	}
	bar := components.NewProgressBar("", float64(sum.Percentage)/100, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if r.bestStreak > 1 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Best streak: %d in a row", r.bestStreak)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(verdict(sum.Percentage)))

	return b.String()
}

// verdict picks the closing line for the score.
func verdict(percentage int) string {
	switch {
	case percentage == 100:
		return "Flawless navigation. Not a single wrong turn."
	case percentage >= 80:
		return "Road legend. You know your way around."
	case percentage >= 50:
		return "Solid run. A few detours along the way."
	default:
		return "Rough trip. Check the map and try again."
	}
}
