package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/backroads/internal/atlas"
)

// DefaultSessionSize is the number of questions in a full game.
const DefaultSessionSize = 10

// ErrEmptyPool is returned when a difficulty has no candidate countries.
// That can only happen with a misconfigured catalog, so it is surfaced
// instead of producing an empty session.
var ErrEmptyPool = errors.New("quiz: no countries in difficulty pool")

// GenerateSession builds an ordered session of up to size questions for
// the given difficulty. Countries are sampled without replacement from the
// shuffled tier pool, so a session never repeats a country; a pool smaller
// than size yields a shorter session rather than an error.
//
// Hard questions are always guess-the-country (flag only); easy and medium
// flip a fair coin per question between capital and country.
func GenerateSession(rng *rand.Rand, d Difficulty, index *atlas.Index, size int) ([]Question, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("quiz: unknown difficulty %q", d)
	}
	pool := index.ByTier[d.tier()]
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w (difficulty %s)", ErrEmptyPool, d)
	}

	shuffled := Shuffle(rng, pool)
	if size > len(shuffled) {
		size = len(shuffled)
	}

	questions := make([]Question, 0, size)
	for _, c := range shuffled[:size] {
		mode := GuessCountry
		if d != Hard && rng.IntN(2) == 0 {
			mode = GuessCapital
		}
		questions = append(questions, Question{Country: c, Mode: mode})
	}
	return questions, nil
}
