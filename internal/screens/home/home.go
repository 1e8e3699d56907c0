package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/backroads/internal/quiz"
	"github.com/abhisek/backroads/internal/router"
	"github.com/abhisek/backroads/internal/screen"
	"github.com/abhisek/backroads/internal/screens/game"
	"github.com/abhisek/backroads/internal/screens/history"
	"github.com/abhisek/backroads/internal/store"
	"github.com/abhisek/backroads/internal/ui/components"
)

// HomeScreen is the difficulty picker and trip dashboard.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	stats      *store.Stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. games may be nil when the history
// database could not be opened; the game remains fully playable.
func New(cfg quiz.Config, games store.GameRepo) *HomeScreen {
	var stats *store.Stats
	if games != nil {
		stats, _ = games.Stats(context.Background())
	}

	menuLabels := []string{"EASY RUN", "MEDIUM RUN", "HARD RUN", "TRAVEL LOG", "EXIT"}

	startRun := func(d quiz.Difficulty) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: game.New(cfg, d, games)}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: startRun(quiz.Easy)},
		{Label: menuLabels[1], Action: startRun(quiz.Medium)},
		{Label: menuLabels[2], Action: startRun(quiz.Hard)},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if games == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(games)}
			}
		}, Disabled: games == nil},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		stats:      stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled()))

	content := strings.Join(sections, "\n\n")

	return renderSignFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) disabled() map[int]bool {
	d := make(map[int]bool)
	for i, item := range h.menu.Items {
		if item.Disabled {
			d[i] = true
		}
	}
	return d
}
