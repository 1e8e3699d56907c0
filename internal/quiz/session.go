package quiz

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/abhisek/backroads/internal/atlas"
)

// Phase is the session state machine's current state.
type Phase int

const (
	// PhaseLoading: a question is being prepared. Preparation is pure
	// in-memory work, so this phase collapses synchronously inside Start
	// and Next; it exists so shells can render a loading state if
	// preparation ever becomes asynchronous.
	PhaseLoading Phase = iota
	// PhaseAwaitingAnswer: the question is on screen, options are live.
	PhaseAwaitingAnswer
	// PhaseAnswered: answered or timed out; the reveal is on screen.
	PhaseAnswered
	// PhaseComplete: all questions consumed; Summary is valid.
	PhaseComplete
)

// Summary is the final result, emitted once the session completes.
type Summary struct {
	Score      int
	Total      int
	Percentage int // round(100 * Score / Total)
}

// QuestionView is everything a shell needs to render the current question.
// It never exposes engine internals beyond the reveal flags, so a renderer
// cannot corrupt session state.
type QuestionView struct {
	Number int // 1-based position in the session
	Total  int

	ClueLabel string // prompt heading, e.g. "Capital City"
	ClueText  string // visible clue; empty on medium until a hint, empty on hard

	FlagCode string
	FlagURL  string

	Options      []string
	CorrectIndex int
	ChosenIndex  int // -1 until an option is chosen; stays -1 on timeout

	Answered bool
	TimedOut bool

	HintAvailable bool
	HintUsed      bool

	Timed         bool
	Duration      int // full countdown seconds, for gauge scaling
	TimeRemaining int
	Warning       bool
}

// Config wires a Session to its catalog and environment. Zero values get
// sensible defaults except Catalog, which is required.
type Config struct {
	Catalog     []atlas.Country
	Index       *atlas.Index   // built from Catalog when nil
	SessionSize int            // DefaultSessionSize when <= 0
	Rand        *rand.Rand     // NewRand() when nil; tests inject a seeded one
	Flags       atlas.Resolver // atlas.FlagURL when nil
}

// Session owns one playthrough: the generated questions, score, streak,
// and per-question timer. No ambient globals — independent sessions can
// coexist, which is also what makes the engine testable.
type Session struct {
	cfg Config

	difficulty Difficulty
	questions  []Question
	index      int
	score      int
	streak     int
	phase      Phase

	mode      Mode // effective mode of the current question (easy forces GuessCountry)
	answer    string
	view      QuestionView
	countdown *Countdown
}

// NewSession validates the configuration and returns an idle session.
// Call Start to begin a playthrough.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Catalog) == 0 {
		return nil, atlas.ErrEmptyCatalog
	}
	if cfg.Index == nil {
		idx, err := atlas.BuildIndex(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("quiz: build index: %w", err)
		}
		cfg.Index = idx
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = DefaultSessionSize
	}
	if cfg.Rand == nil {
		cfg.Rand = NewRand()
	}
	if cfg.Flags == nil {
		cfg.Flags = atlas.FlagURL
	}
	return &Session{cfg: cfg, phase: PhaseComplete}, nil
}

// Start begins a fresh playthrough at the given difficulty, discarding any
// session in progress. Switching difficulty mid-game is exactly this: a
// restart, never a mid-session edit.
func (s *Session) Start(d Difficulty) error {
	questions, err := GenerateSession(s.cfg.Rand, d, s.cfg.Index, s.cfg.SessionSize)
	if err != nil {
		return err
	}
	s.setCountdown(nil)
	s.difficulty = d
	s.questions = questions
	s.index = 0
	s.score = 0
	s.streak = 0
	s.phase = PhaseLoading
	s.loadQuestion()
	return nil
}

// loadQuestion prepares the display state for the current question and
// moves the machine to PhaseAwaitingAnswer.
//
// Difficulty shapes the presentation: easy shows the capital as a clue and
// always asks for the country (flag + capital combined); medium hides the
// revealing clue behind a single hint and runs a 45s countdown; hard shows
// the flag alone under a 15s countdown.
func (s *Session) loadQuestion() {
	q := s.questions[s.index]
	c := q.Country

	v := QuestionView{
		Number:      s.index + 1,
		Total:       len(s.questions),
		FlagCode:    c.FlagCode,
		FlagURL:     s.cfg.Flags(c.FlagCode),
		ChosenIndex: -1,
	}

	mode := q.Mode
	field := FieldCountry
	answer := c.Name

	switch s.difficulty {
	case Easy:
		mode = GuessCountry
		v.ClueLabel = "Capital City"
		v.ClueText = c.Capital
	case Medium:
		v.HintAvailable = true
		if mode == GuessCapital {
			field = FieldCapital
			answer = c.Capital
			v.ClueLabel = "IDENTIFY THE CAPITAL"
		} else {
			v.ClueLabel = "IDENTIFY THE COUNTRY"
		}
	case Hard:
		mode = GuessCountry
		v.ClueLabel = "Identify the Country"
	}

	v.Options = SelectOptions(s.cfg.Rand, answer, field, s.difficulty, c, s.cfg.Catalog, s.cfg.Index)
	for i, opt := range v.Options {
		if opt == answer {
			v.CorrectIndex = i
			break
		}
	}

	if secs := s.difficulty.TimerSeconds(); secs > 0 {
		v.Timed = true
		v.Duration = secs
		cd := NewCountdown(secs)
		cd.OnTimeout = s.timeout
		s.setCountdown(cd)
	} else {
		s.setCountdown(nil)
	}

	s.mode = mode
	s.answer = answer
	s.view = v
	s.phase = PhaseAwaitingAnswer
}

// setCountdown installs a new countdown, stopping any prior one first so
// a stale timer can never fire into the new question.
func (s *Session) setCountdown(cd *Countdown) {
	if s.countdown != nil {
		s.countdown.Stop()
	}
	s.countdown = cd
}

// Tick advances the active countdown by one second. The host loop calls
// this at 1Hz; outside PhaseAwaitingAnswer it is a no-op.
func (s *Session) Tick() {
	if s.phase != PhaseAwaitingAnswer {
		return
	}
	s.countdown.Tick()
}

// timeout is the countdown's expiry path: scored like a wrong answer
// (streak resets, score unchanged) but no option is marked chosen; only
// the correct option is revealed. The countdown deactivated itself before
// invoking this, so no further tick can interleave.
func (s *Session) timeout() {
	if s.phase != PhaseAwaitingAnswer {
		return
	}
	s.streak = 0
	s.view.Answered = true
	s.view.TimedOut = true
	s.view.HintAvailable = false
	s.phase = PhaseAnswered
}

// SubmitAnswer records the option at index i as the player's choice.
// Ignored outside PhaseAwaitingAnswer or for an out-of-range index.
func (s *Session) SubmitAnswer(i int) {
	if s.phase != PhaseAwaitingAnswer || i < 0 || i >= len(s.view.Options) {
		return
	}
	// Stop the timer before any state mutation is visible; a late tick
	// must never land on an answered question. The countdown is kept so
	// the remaining seconds stay readable for the reveal.
	s.countdown.Stop()

	s.view.ChosenIndex = i
	s.view.Answered = true
	s.view.HintAvailable = false
	if s.view.Options[i] == s.answer {
		s.score++
		s.streak++
	} else {
		s.streak = 0
	}
	s.phase = PhaseAnswered
}

// RequestHint reveals the hidden clue: the capital when guessing the
// country, the country when guessing the capital. Medium difficulty only,
// at most once per question; score, streak, and timer are untouched.
// Anything else is a no-op.
func (s *Session) RequestHint() {
	if s.phase != PhaseAwaitingAnswer || s.difficulty != Medium {
		return
	}
	if s.view.HintUsed || !s.view.HintAvailable {
		return
	}
	c := s.questions[s.index].Country
	if s.mode == GuessCapital {
		s.view.ClueText = c.Name
	} else {
		s.view.ClueText = "Capital: " + c.Capital
	}
	s.view.HintUsed = true
	s.view.HintAvailable = false
}

// Next advances past an answered question, either loading the next one or
// completing the session. Ignored outside PhaseAnswered.
func (s *Session) Next() {
	if s.phase != PhaseAnswered {
		return
	}
	s.index++
	if s.index == len(s.questions) {
		s.phase = PhaseComplete
		return
	}
	s.phase = PhaseLoading
	s.loadQuestion()
}

// View returns the render state for the current question, with live timer
// fields. The returned value is a copy.
func (s *Session) View() QuestionView {
	v := s.view
	v.TimeRemaining = s.countdown.Remaining()
	v.Warning = s.countdown.Warning()
	return v
}

// Summary computes the final result. Meaningful once Phase is
// PhaseComplete; safe to call earlier (reflects progress so far).
func (s *Session) Summary() Summary {
	total := len(s.questions)
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(s.score) / float64(total)))
	}
	return Summary{Score: s.score, Total: total, Percentage: pct}
}

// PeekNextFlag resolves the upcoming question's flag so shells that load
// image assets can preload it. Best-effort: empty when no question
// remains, and nothing ever depends on the preload happening.
func (s *Session) PeekNextFlag() string {
	if s.index+1 >= len(s.questions) {
		return ""
	}
	return s.cfg.Flags(s.questions[s.index+1].Country.FlagCode)
}

// Current returns the current question with its effective mode. Shells
// use it to persist outcomes after the reveal; rendering goes through
// View instead.
func (s *Session) Current() Question {
	if s.index >= len(s.questions) {
		return Question{}
	}
	return Question{Country: s.questions[s.index].Country, Mode: s.mode}
}

// Difficulty returns the active difficulty setting.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Phase returns the state machine's current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int { return s.streak }

// Len returns the session length in questions.
func (s *Session) Len() int { return len(s.questions) }
