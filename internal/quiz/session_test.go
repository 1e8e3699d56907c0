package quiz

import (
	"strings"
	"testing"

	"github.com/abhisek/backroads/internal/atlas"
)

func newTestSession(t *testing.T, seed uint64) *Session {
	t.Helper()
	s, err := NewSession(Config{Catalog: testCatalog(), Rand: testRand(seed)})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionEasyPerfectGame(t *testing.T) {
	s := newTestSession(t, 5)
	if err := s.Start(Easy); err != nil {
		t.Fatalf("Start: %v", err)
	}

	total := s.Len()
	for n := 1; n <= total; n++ {
		if s.Phase() != PhaseAwaitingAnswer {
			t.Fatalf("question %d: phase = %v", n, s.Phase())
		}
		v := s.View()
		if v.Number != n || v.Total != total {
			t.Fatalf("question %d: numbering %d/%d", n, v.Number, v.Total)
		}
		if v.ClueLabel != "Capital City" {
			t.Errorf("question %d: clue label %q", n, v.ClueLabel)
		}
		if v.ClueText == "" {
			t.Errorf("question %d: easy clue text empty", n)
		}
		if v.Timed {
			t.Errorf("question %d: easy question is timed", n)
		}
		if v.HintAvailable {
			t.Errorf("question %d: hint offered on easy", n)
		}
		if len(v.Options) != OptionCount {
			t.Fatalf("question %d: %d options", n, len(v.Options))
		}

		s.SubmitAnswer(v.CorrectIndex)
		if s.Phase() != PhaseAnswered {
			t.Fatalf("question %d: phase after answer = %v", n, s.Phase())
		}
		if s.Score() != n || s.Streak() != n {
			t.Fatalf("question %d: score %d streak %d", n, s.Score(), s.Streak())
		}
		s.Next()
	}

	if s.Phase() != PhaseComplete {
		t.Fatalf("phase after last Next = %v", s.Phase())
	}
	sum := s.Summary()
	if sum.Score != total || sum.Total != total || sum.Percentage != 100 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestSessionMissResetsStreakNotScore(t *testing.T) {
	s := newTestSession(t, 9)
	if err := s.Start(Easy); err != nil {
		t.Fatalf("Start: %v", err)
	}

	answer := func(correct bool) {
		v := s.View()
		i := v.CorrectIndex
		if !correct {
			i = (i + 1) % len(v.Options)
		}
		s.SubmitAnswer(i)
		s.Next()
	}

	answer(true)
	answer(true)
	if s.Score() != 2 || s.Streak() != 2 {
		t.Fatalf("after two hits: score %d streak %d", s.Score(), s.Streak())
	}
	answer(false)
	if s.Score() != 2 || s.Streak() != 0 {
		t.Fatalf("after miss: score %d streak %d", s.Score(), s.Streak())
	}
	answer(true)
	if s.Score() != 3 || s.Streak() != 1 {
		t.Fatalf("after recovery: score %d streak %d", s.Score(), s.Streak())
	}
}

func TestSessionMediumTimeout(t *testing.T) {
	s := newTestSession(t, 2)
	if err := s.Start(Medium); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.SubmitAnswer(s.View().CorrectIndex)
	s.Next()
	if s.Streak() != 1 {
		t.Fatalf("streak = %d before timeout", s.Streak())
	}

	v := s.View()
	if !v.Timed || v.Duration != 45 || v.TimeRemaining != 45 {
		t.Fatalf("medium timer state: %+v", v)
	}

	for i := 0; i < 45; i++ {
		if i == 40 && !s.View().Warning {
			t.Error("no warning with 5 seconds left")
		}
		s.Tick()
	}

	if s.Phase() != PhaseAnswered {
		t.Fatalf("phase after expiry = %v", s.Phase())
	}
	v = s.View()
	if !v.TimedOut || !v.Answered {
		t.Fatalf("timeout reveal state: %+v", v)
	}
	if v.ChosenIndex != -1 {
		t.Errorf("chosen index = %d on timeout", v.ChosenIndex)
	}
	if s.Score() != 1 || s.Streak() != 0 {
		t.Errorf("after timeout: score %d streak %d", s.Score(), s.Streak())
	}

	// Expired timer stays dead.
	s.Tick()
	if s.Phase() != PhaseAnswered {
		t.Fatalf("tick after expiry moved phase to %v", s.Phase())
	}
}

func TestSessionAnswerStopsTimer(t *testing.T) {
	s := newTestSession(t, 4)
	if err := s.Start(Hard); err != nil {
		t.Fatalf("Start: %v", err)
	}
	v := s.View()
	if !v.Timed || v.Duration != 15 {
		t.Fatalf("hard timer state: %+v", v)
	}
	if v.ClueLabel != "Identify the Country" {
		t.Errorf("hard clue label %q", v.ClueLabel)
	}

	for i := 0; i < 14; i++ {
		s.Tick()
	}
	s.SubmitAnswer(v.CorrectIndex)
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Phase() != PhaseAnswered {
		t.Fatalf("late ticks moved phase to %v", s.Phase())
	}
	if got := s.View(); got.TimedOut {
		t.Fatal("timed out after being answered")
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d", s.Score())
	}
}

func TestSessionHintMediumOnce(t *testing.T) {
	s := newTestSession(t, 6)
	if err := s.Start(Medium); err != nil {
		t.Fatalf("Start: %v", err)
	}

	v := s.View()
	if !v.HintAvailable || v.HintUsed {
		t.Fatalf("hint state before use: %+v", v)
	}
	if v.ClueText != "" {
		t.Fatalf("medium clue text %q before hint", v.ClueText)
	}

	c := s.questions[s.index].Country
	s.RequestHint()
	v = s.View()
	if !v.HintUsed || v.HintAvailable {
		t.Fatalf("hint state after use: %+v", v)
	}
	switch s.mode {
	case GuessCapital:
		if v.ClueText != c.Name {
			t.Fatalf("hint revealed %q, want country %q", v.ClueText, c.Name)
		}
	case GuessCountry:
		if v.ClueText != "Capital: "+c.Capital {
			t.Fatalf("hint revealed %q, want capital of %s", v.ClueText, c.Name)
		}
	}

	// Second request changes nothing.
	before := v.ClueText
	s.RequestHint()
	if got := s.View().ClueText; got != before {
		t.Fatalf("second hint changed clue to %q", got)
	}
	// Timer and scoring untouched.
	if s.Score() != 0 || s.Streak() != 0 {
		t.Errorf("hint affected score/streak")
	}
	if s.View().TimeRemaining != 45 {
		t.Errorf("hint consumed timer: %d remaining", s.View().TimeRemaining)
	}
}

func TestSessionHintIgnoredOutsideMedium(t *testing.T) {
	for _, d := range []Difficulty{Easy, Hard} {
		s := newTestSession(t, 8)
		if err := s.Start(d); err != nil {
			t.Fatalf("Start(%s): %v", d, err)
		}
		before := s.View()
		s.RequestHint()
		after := s.View()
		if after.ClueText != before.ClueText || after.HintUsed {
			t.Fatalf("%s: hint had an effect: %+v", d, after)
		}
	}
}

func TestSessionInvalidTransitionsNoOp(t *testing.T) {
	s := newTestSession(t, 3)

	// Idle session: everything is a no-op.
	s.SubmitAnswer(0)
	s.Next()
	s.Tick()
	s.RequestHint()

	if err := s.Start(Easy); err != nil {
		t.Fatalf("Start: %v", err)
	}
	v := s.View()

	// Next before answering.
	s.Next()
	if s.Phase() != PhaseAwaitingAnswer || s.View().Number != 1 {
		t.Fatal("Next advanced an unanswered question")
	}

	// Out-of-range submissions.
	s.SubmitAnswer(-1)
	s.SubmitAnswer(len(v.Options))
	if s.Phase() != PhaseAwaitingAnswer {
		t.Fatal("out-of-range index answered the question")
	}

	// Double submission keeps the first result.
	s.SubmitAnswer(v.CorrectIndex)
	s.SubmitAnswer((v.CorrectIndex + 1) % len(v.Options))
	if s.Score() != 1 || s.View().ChosenIndex != v.CorrectIndex {
		t.Fatalf("second submission changed result: score %d chosen %d", s.Score(), s.View().ChosenIndex)
	}
}

func TestSessionSummaryRounding(t *testing.T) {
	cases := []struct {
		hits, size, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{7, 10, 70},
	}
	for _, tc := range cases {
		s, err := NewSession(Config{Catalog: testCatalog(), Rand: testRand(1), SessionSize: tc.size})
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		if err := s.Start(Hard); err != nil {
			t.Fatalf("Start: %v", err)
		}
		for i := 0; i < tc.size; i++ {
			v := s.View()
			idx := v.CorrectIndex
			if i >= tc.hits {
				idx = (idx + 1) % len(v.Options)
			}
			s.SubmitAnswer(idx)
			s.Next()
		}
		sum := s.Summary()
		if sum.Score != tc.hits || sum.Total != tc.size || sum.Percentage != tc.want {
			t.Errorf("%d/%d: summary %+v, want %d%%", tc.hits, tc.size, sum, tc.want)
		}
	}
}

func TestSessionPeekNextFlag(t *testing.T) {
	s, err := NewSession(Config{
		Catalog:     testCatalog(),
		Rand:        testRand(12),
		SessionSize: 2,
		Flags:       atlas.FlagURL,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := s.Start(Easy); err != nil {
		t.Fatalf("Start: %v", err)
	}

	next := s.PeekNextFlag()
	if !strings.HasPrefix(next, "https://flagcdn.com/w320/") {
		t.Fatalf("peeked flag %q", next)
	}
	s.SubmitAnswer(s.View().CorrectIndex)
	s.Next()
	if got := s.PeekNextFlag(); got != "" {
		t.Fatalf("peek past last question = %q", got)
	}
}

func TestSessionRestartResets(t *testing.T) {
	s := newTestSession(t, 10)
	if err := s.Start(Medium); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.SubmitAnswer(s.View().CorrectIndex)

	if err := s.Start(Hard); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Difficulty() != Hard || s.Score() != 0 || s.Streak() != 0 {
		t.Fatalf("restart kept state: %s score %d streak %d", s.Difficulty(), s.Score(), s.Streak())
	}
	if s.Phase() != PhaseAwaitingAnswer || s.View().Number != 1 {
		t.Fatalf("restart position: phase %v question %d", s.Phase(), s.View().Number)
	}
}

func TestNewSessionEmptyCatalog(t *testing.T) {
	if _, err := NewSession(Config{}); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
