package game

import (
	"time"

	"github.com/abhisek/backroads/internal/quiz"
)

// gameReadyMsg is sent when the session has been generated.
type gameReadyMsg struct {
	Session *quiz.Session
	Err     error
}

// timerTickMsg is sent every second to drive the fuel gauge.
type timerTickMsg time.Time

// gameEndMsg is sent to trigger the end-of-game flow.
type gameEndMsg struct{}

// gameSavedMsg reports the history write; persistence is best-effort
// so the error is only surfaced in logs-by-eye during development.
type gameSavedMsg struct {
	Err error
}
