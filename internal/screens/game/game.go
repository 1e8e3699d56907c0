package game

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/quiz"
	"github.com/abhisek/backroads/internal/router"
	"github.com/abhisek/backroads/internal/screen"
	"github.com/abhisek/backroads/internal/screens/results"
	"github.com/abhisek/backroads/internal/store"
	"github.com/abhisek/backroads/internal/ui/components"
	"github.com/abhisek/backroads/internal/ui/layout"
	"github.com/abhisek/backroads/internal/ui/theme"

	"github.com/google/uuid"
)

// GameScreen runs one playthrough: it drives the engine from key and
// tick messages, renders the question, and persists the finished game.
type GameScreen struct {
	cfg        quiz.Config
	difficulty quiz.Difficulty
	games      store.GameRepo

	sess       *quiz.Session
	options    components.OptionList
	gameID     string
	startedAt  time.Time
	bestStreak int
	answers    []store.AnswerRecord

	showingQuitConfirm bool
	spin               spinner.Model
	errMsg             string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a game screen for the given difficulty. games may be nil;
// the run is then simply not recorded.
func New(cfg quiz.Config, d quiz.Difficulty, games store.GameRepo) *GameScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &GameScreen{
		cfg:        cfg,
		difficulty: d,
		games:      games,
		spin:       sp,
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return tea.Batch(g.spin.Tick, g.initGame())
}

func (g *GameScreen) Title() string {
	switch g.difficulty {
	case quiz.Easy:
		return "Easy Run"
	case quiz.Medium:
		return "Medium Run"
	case quiz.Hard:
		return "Hard Run"
	}
	return "Run"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End run"},
			{Key: "N", Description: "Keep driving"},
		}
	}
	if g.sess == nil {
		return nil
	}
	v := g.sess.View()
	if v.Answered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
	}
	if v.HintAvailable {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		return g.handleReady(msg)

	case timerTickMsg:
		return g.handleTimerTick()

	case gameEndMsg:
		return g.handleGameEnd()

	case gameSavedMsg:
		// Best-effort persistence; a failed write never interrupts play.
		return g, nil

	case spinner.TickMsg:
		if g.sess == nil && g.errMsg == "" {
			var cmd tea.Cmd
			g.spin, cmd = g.spin.Update(msg)
			return g, cmd
		}
		return g, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	return g, nil
}

// initGame generates the session off the update loop.
func (g *GameScreen) initGame() tea.Cmd {
	cfg, d := g.cfg, g.difficulty
	return func() tea.Msg {
		sess, err := quiz.NewSession(cfg)
		if err != nil {
			return gameReadyMsg{Err: err}
		}
		if err := sess.Start(d); err != nil {
			return gameReadyMsg{Err: err}
		}
		return gameReadyMsg{Session: sess}
	}
}

func (g *GameScreen) handleReady(msg gameReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.errMsg = msg.Err.Error()
		return g, nil
	}
	g.sess = msg.Session
	g.gameID = uuid.New().String()
	g.startedAt = time.Now()
	g.syncOptions()
	return g, tickCmd()
}

func (g *GameScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if g.sess == nil || g.sess.Phase() == quiz.PhaseComplete {
		return g, nil
	}

	wasAwaiting := g.sess.Phase() == quiz.PhaseAwaitingAnswer
	g.sess.Tick()

	// The fuel ran out this tick: record the miss and lock the options.
	if wasAwaiting && g.sess.Phase() == quiz.PhaseAnswered {
		g.recordAnswer()
		g.options = g.options.Reveal(-1, true)
	}

	return g, tickCmd()
}

func (g *GameScreen) handleGameEnd() (screen.Screen, tea.Cmd) {
	sum := g.sess.Summary()
	next := results.New(g.cfg, g.difficulty, sum, g.bestStreak, g.games)

	return g, tea.Batch(
		g.saveGame(sum),
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	)
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if g.errMsg != "" {
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if g.sess == nil {
		return g, nil
	}

	// Quit confirmation dialog. The timer keeps running underneath;
	// stalling on the dialog is not free thinking time forever, only
	// until the fuel runs out.
	if g.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			g.showingQuitConfirm = false
		}
		return g, nil
	}

	v := g.sess.View()

	if v.Answered {
		switch key {
		case "enter", "n", " ":
			g.sess.Next()
			if g.sess.Phase() == quiz.PhaseComplete {
				return g, func() tea.Msg { return gameEndMsg{} }
			}
			g.syncOptions()
		case "esc":
			g.showingQuitConfirm = true
		}
		return g, nil
	}

	switch key {
	case "esc":
		g.showingQuitConfirm = true
		return g, nil
	case "h", "H":
		g.sess.RequestHint()
		return g, nil
	}

	var chosen int
	g.options, chosen = g.options.Update(msg)
	if chosen >= 0 {
		g.submitAnswer(chosen)
	}
	return g, nil
}

func (g *GameScreen) submitAnswer(i int) {
	g.sess.SubmitAnswer(i)
	if streak := g.sess.Streak(); streak > g.bestStreak {
		g.bestStreak = streak
	}
	v := g.sess.View()
	g.recordAnswer()
	g.options = g.options.Reveal(v.ChosenIndex, false)
}

// recordAnswer captures the just-revealed question for the history
// write at the end of the run.
func (g *GameScreen) recordAnswer() {
	v := g.sess.View()
	q := g.sess.Current()

	chosen := ""
	if v.ChosenIndex >= 0 {
		chosen = v.Options[v.ChosenIndex]
	}

	g.answers = append(g.answers, store.AnswerRecord{
		Position: v.Number,
		Country:  q.Country.Name,
		Capital:  q.Country.Capital,
		Mode:     q.Mode.String(),
		Chosen:   chosen,
		Correct:  v.Options[v.CorrectIndex],
		Hit:      !v.TimedOut && v.ChosenIndex == v.CorrectIndex,
		TimedOut: v.TimedOut,
		HintUsed: v.HintUsed,
		TimeLeft: v.TimeRemaining,
	})
}

func (g *GameScreen) saveGame(sum quiz.Summary) tea.Cmd {
	if g.games == nil {
		return nil
	}

	rec := store.GameRecord{
		ID:         g.gameID,
		Difficulty: string(g.difficulty),
		Score:      sum.Score,
		Total:      sum.Total,
		Percentage: sum.Percentage,
		BestStreak: g.bestStreak,
		StartedAt:  g.startedAt,
		FinishedAt: time.Now(),
	}
	games, answers := g.games, g.answers

	return func() tea.Msg {
		return gameSavedMsg{Err: games.Save(context.Background(), rec, answers)}
	}
}

// syncOptions rebuilds the option list for the question on screen.
func (g *GameScreen) syncOptions() {
	v := g.sess.View()
	g.options = components.NewOptionList(v.Options, v.CorrectIndex)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
