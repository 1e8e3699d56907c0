// Package quiz implements the Backroads game engine: session generation
// from the country catalog, distractor selection, the per-question
// countdown, and the session state machine. It is UI-free; shells drive it
// through SubmitAnswer/RequestHint/Next/Start and render from QuestionView.
package quiz

import (
	"github.com/abhisek/backroads/internal/atlas"
)

// Difficulty is the player-facing game setting. It shares spellings with
// atlas.Tier because each difficulty draws its candidate pool from the
// matching cumulative tier bucket.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the selectable difficulties in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// TimerSeconds returns the per-question countdown length, or 0 when the
// difficulty is untimed.
func (d Difficulty) TimerSeconds() int {
	switch d {
	case Medium:
		return 45
	case Hard:
		return 15
	}
	return 0
}

// tier maps the difficulty to its catalog pool bucket.
func (d Difficulty) tier() atlas.Tier {
	return atlas.Tier(d)
}

// Mode says which attribute of the country is hidden and must be guessed.
type Mode int

const (
	GuessCapital Mode = iota
	GuessCountry
)

func (m Mode) String() string {
	if m == GuessCapital {
		return "guessCapital"
	}
	return "guessCountry"
}

// Question pairs a catalog entry with the attribute the player must guess.
// Created during session generation, consumed once, discarded with the
// session.
type Question struct {
	Country atlas.Country
	Mode    Mode
}
