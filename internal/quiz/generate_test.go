package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/backroads/internal/atlas"
)

// testCatalog is a small fixture with known tier, continent, and region
// structure: six easy European entries across two regions, four medium
// Asian entries (one alone in its region), three hard African entries.
func testCatalog() []atlas.Country {
	return []atlas.Country{
		{Name: "France", Capital: "Paris", FlagCode: "fr", Continent: atlas.Europe, Region: "Western Europe", Tier: atlas.TierEasy},
		{Name: "Germany", Capital: "Berlin", FlagCode: "de", Continent: atlas.Europe, Region: "Western Europe", Tier: atlas.TierEasy},
		{Name: "Netherlands", Capital: "Amsterdam", FlagCode: "nl", Continent: atlas.Europe, Region: "Western Europe", Tier: atlas.TierEasy},
		{Name: "Belgium", Capital: "Brussels", FlagCode: "be", Continent: atlas.Europe, Region: "Western Europe", Tier: atlas.TierEasy},
		{Name: "Italy", Capital: "Rome", FlagCode: "it", Continent: atlas.Europe, Region: "Southern Europe", Tier: atlas.TierEasy},
		{Name: "Spain", Capital: "Madrid", FlagCode: "es", Continent: atlas.Europe, Region: "Southern Europe", Tier: atlas.TierEasy},

		{Name: "Vietnam", Capital: "Hanoi", FlagCode: "vn", Continent: atlas.Asia, Region: "Southeast Asia", Tier: atlas.TierMedium},
		{Name: "Thailand", Capital: "Bangkok", FlagCode: "th", Continent: atlas.Asia, Region: "Southeast Asia", Tier: atlas.TierMedium},
		{Name: "Malaysia", Capital: "Kuala Lumpur", FlagCode: "my", Continent: atlas.Asia, Region: "Southeast Asia", Tier: atlas.TierMedium},
		{Name: "Kazakhstan", Capital: "Astana", FlagCode: "kz", Continent: atlas.Asia, Region: "Central Asia", Tier: atlas.TierMedium},

		{Name: "Kenya", Capital: "Nairobi", FlagCode: "ke", Continent: atlas.Africa, Region: "East Africa", Tier: atlas.TierHard},
		{Name: "Tanzania", Capital: "Dodoma", FlagCode: "tz", Continent: atlas.Africa, Region: "East Africa", Tier: atlas.TierHard},
		{Name: "Uganda", Capital: "Kampala", FlagCode: "ug", Continent: atlas.Africa, Region: "East Africa", Tier: atlas.TierHard},
	}
}

func testIndex(t *testing.T) *atlas.Index {
	t.Helper()
	idx, err := atlas.BuildIndex(testCatalog())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return idx
}

func TestGenerateSessionNoRepeats(t *testing.T) {
	idx := testIndex(t)
	for _, d := range Difficulties {
		qs, err := GenerateSession(testRand(7), d, idx, DefaultSessionSize)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		seen := map[string]bool{}
		for _, q := range qs {
			if seen[q.Country.Name] {
				t.Errorf("%s: country %s repeated", d, q.Country.Name)
			}
			seen[q.Country.Name] = true
		}
	}
}

func TestGenerateSessionClampsToPool(t *testing.T) {
	idx := testIndex(t)
	cases := []struct {
		d    Difficulty
		want int // cumulative pool sizes of the fixture
	}{
		{Easy, 6},
		{Medium, 10},
		{Hard, 13},
	}
	for _, tc := range cases {
		qs, err := GenerateSession(testRand(3), tc.d, idx, 50)
		if err != nil {
			t.Fatalf("%s: %v", tc.d, err)
		}
		if len(qs) != tc.want {
			t.Errorf("%s: got %d questions, want pool size %d", tc.d, len(qs), tc.want)
		}
	}
}

func TestGenerateSessionHardAlwaysGuessCountry(t *testing.T) {
	idx := testIndex(t)
	for seed := uint64(0); seed < 20; seed++ {
		qs, err := GenerateSession(testRand(seed), Hard, idx, DefaultSessionSize)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, q := range qs {
			if q.Mode != GuessCountry {
				t.Fatalf("seed %d: hard question for %s has mode %s", seed, q.Country.Name, q.Mode)
			}
		}
	}
}

func TestGenerateSessionMediumMixesModes(t *testing.T) {
	idx := testIndex(t)
	modes := map[Mode]int{}
	for seed := uint64(0); seed < 30; seed++ {
		qs, err := GenerateSession(testRand(seed), Medium, idx, DefaultSessionSize)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, q := range qs {
			modes[q.Mode]++
		}
	}
	if modes[GuessCapital] == 0 || modes[GuessCountry] == 0 {
		t.Errorf("coin flip never produced both modes: %v", modes)
	}
}

func TestGenerateSessionUnknownDifficulty(t *testing.T) {
	if _, err := GenerateSession(testRand(1), Difficulty("impossible"), testIndex(t), 10); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestGenerateSessionEmptyPool(t *testing.T) {
	idx := &atlas.Index{ByTier: map[atlas.Tier][]atlas.Country{}}
	_, err := GenerateSession(testRand(1), Easy, idx, 10)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("got %v, want ErrEmptyPool", err)
	}
}
