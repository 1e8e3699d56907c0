package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/backroads/internal/atlas"
)

// OptionCount is the number of answer choices shown per question.
const OptionCount = 4

// AnswerField selects which country attribute serves as the answer string.
type AnswerField int

const (
	FieldCapital AnswerField = iota
	FieldCountry
)

func (f AnswerField) of(c atlas.Country) string {
	if f == FieldCapital {
		return c.Capital
	}
	return c.Name
}

// SelectOptions returns OptionCount distinct answer strings including
// correct, in uniformly random order.
//
// The distractor pool narrows with difficulty: easy draws from the whole
// catalog, medium from the entry's region (falling back to its continent
// when the region has fewer than OptionCount-1 candidates), hard from the
// continent. Whenever the scoped pool runs dry before four options exist,
// the remainder is topped up from the full catalog, so the invariant holds
// for any catalog with at least four entries.
func SelectOptions(rng *rand.Rand, correct string, field AnswerField, d Difficulty, entry atlas.Country, catalog []atlas.Country, index *atlas.Index) []string {
	var pool []atlas.Country
	switch d {
	case Medium:
		pool = distractors(index.ByRegion[entry.Region], field, correct)
		if len(pool) < OptionCount-1 {
			pool = distractors(index.ByContinent[entry.Continent], field, correct)
		}
	case Hard:
		pool = distractors(index.ByContinent[entry.Continent], field, correct)
	default:
		pool = distractors(catalog, field, correct)
	}

	seen := map[string]bool{correct: true}
	options := []string{correct}
	fill := func(candidates []atlas.Country) {
		for _, c := range Shuffle(rng, candidates) {
			if len(options) == OptionCount {
				return
			}
			if a := field.of(c); !seen[a] {
				seen[a] = true
				options = append(options, a)
			}
		}
	}
	fill(pool)
	if len(options) < OptionCount {
		fill(catalog)
	}

	return Shuffle(rng, options)
}

// distractors filters pool down to entries whose answer field differs from
// the correct answer.
func distractors(pool []atlas.Country, field AnswerField, correct string) []atlas.Country {
	out := make([]atlas.Country, 0, len(pool))
	for _, c := range pool {
		if field.of(c) != correct {
			out = append(out, c)
		}
	}
	return out
}
