package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/atlas"
	"github.com/abhisek/backroads/internal/quiz"
	"github.com/abhisek/backroads/internal/router"
	"github.com/abhisek/backroads/internal/screen"
	"github.com/abhisek/backroads/internal/screens/game"
	"github.com/abhisek/backroads/internal/screens/home"
	"github.com/abhisek/backroads/internal/screens/results"
	"github.com/abhisek/backroads/internal/store"
	"github.com/abhisek/backroads/internal/ui/layout"
)

// Options configures the TUI at startup.
type Options struct {
	// Games persists finished runs. Nil disables history; play still works.
	Games store.GameRepo

	// StartDifficulty skips the home menu and starts a run directly.
	StartDifficulty quiz.Difficulty
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	width   int
	height  int
	initCmd tea.Cmd
}

// newAppModel builds the screen stack for the given options.
func newAppModel(opts Options) AppModel {
	cfg := quiz.Config{Catalog: atlas.Catalog, Flags: atlas.FlagEmoji}

	// Replay from the results screen creates a fresh game screen; the
	// indirection avoids an import cycle between the two packages.
	results.NewGame = func(cfg quiz.Config, d quiz.Difficulty, games store.GameRepo) screen.Screen {
		return game.New(cfg, d, games)
	}

	r := router.New(home.New(cfg, opts.Games))

	var initCmd tea.Cmd
	if opts.StartDifficulty.Valid() {
		initCmd = r.Push(game.New(cfg, opts.StartDifficulty, opts.Games))
	}

	return AppModel{router: r, initCmd: initCmd}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always quits; Esc belongs to the screens (the game
		// screen turns it into a quit confirmation).
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to the
// stock navigation set.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
