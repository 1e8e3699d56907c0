package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/router"
	"github.com/abhisek/backroads/internal/screen"
	"github.com/abhisek/backroads/internal/store"
	"github.com/abhisek/backroads/internal/ui/layout"
	"github.com/abhisek/backroads/internal/ui/theme"
)

type historyLoadedMsg struct {
	Games []store.GameRecord
	Err   error
}

type answersLoadedMsg struct {
	GameID  string
	Answers []store.AnswerRecord
	Err     error
}

// HistoryScreen lists past runs with per-question details on demand.
type HistoryScreen struct {
	games    store.GameRepo
	records  []store.GameRecord
	answers  map[string][]store.AnswerRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(games store.GameRepo) *HistoryScreen {
	return &HistoryScreen{
		games:    games,
		answers:  make(map[string][]store.AnswerRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		games, err := s.games.Recent(context.Background(), 20)
		return historyLoadedMsg{Games: games, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Travel Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Games
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.GameID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= len(s.records) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.records[s.selected].ID
			if _, ok := s.answers[id]; s.expanded[s.selected] && !ok {
				return s, s.loadAnswers(id)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadAnswers(gameID string) tea.Cmd {
	return func() tea.Msg {
		answers, err := s.games.Answers(context.Background(), gameID)
		return answersLoadedMsg{GameID: gameID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading travel log...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No trips yet. Hit the road!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.records {
		dateStr := g.FinishedAt.Format("Jan 02, 2006")

		streakStr := ""
		if g.BestStreak > 1 {
			streakStr = fmt.Sprintf("  streak %d", g.BestStreak)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-6s  %d/%d  %d%%%s",
			prefix, dateStr, g.Difficulty, g.Score, g.Total, g.Percentage, streakStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(width, g.ID))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(width int, gameID string) string {
	answers, ok := s.answers[gameID]
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Loading...")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		var mark, detail string
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case a.Hit:
			mark = "+"
			style = lipgloss.NewStyle().Foreground(theme.Success)
			detail = a.Correct
		case a.TimedOut:
			mark = "~"
			detail = fmt.Sprintf("%s (out of fuel)", a.Correct)
		default:
			mark = "-"
			style = lipgloss.NewStyle().Foreground(theme.Error)
			detail = fmt.Sprintf("%s (picked %s)", a.Correct, a.Chosen)
		}
		hintStr := ""
		if a.HintUsed {
			hintStr = "  hint"
		}
		line := fmt.Sprintf("    %s %d. %s%s", mark, a.Position, detail, hintStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
