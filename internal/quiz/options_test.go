package quiz

import (
	"sort"
	"testing"

	"github.com/abhisek/backroads/internal/atlas"
)

func findCountry(t *testing.T, catalog []atlas.Country, name string) atlas.Country {
	t.Helper()
	for _, c := range catalog {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("fixture has no country %q", name)
	return atlas.Country{}
}

func TestSelectOptionsInvariants(t *testing.T) {
	catalog := testCatalog()
	idx := testIndex(t)
	for _, d := range Difficulties {
		for _, entry := range catalog {
			for seed := uint64(0); seed < 5; seed++ {
				opts := SelectOptions(testRand(seed), entry.Name, FieldCountry, d, entry, catalog, idx)
				if len(opts) != OptionCount {
					t.Fatalf("%s/%s seed %d: %d options", d, entry.Name, seed, len(opts))
				}
				seen := map[string]bool{}
				hasCorrect := false
				for _, o := range opts {
					if seen[o] {
						t.Fatalf("%s/%s seed %d: duplicate option %q", d, entry.Name, seed, o)
					}
					seen[o] = true
					if o == entry.Name {
						hasCorrect = true
					}
				}
				if !hasCorrect {
					t.Fatalf("%s/%s seed %d: correct answer missing from %v", d, entry.Name, seed, opts)
				}
			}
		}
	}
}

func TestSelectOptionsMediumDrawsFromRegion(t *testing.T) {
	catalog := testCatalog()
	idx := testIndex(t)
	entry := findCountry(t, catalog, "France")

	// Western Europe holds exactly four entries, so the options are the
	// region itself in some order.
	opts := SelectOptions(testRand(11), entry.Name, FieldCountry, Medium, entry, catalog, idx)
	sort.Strings(opts)
	want := []string{"Belgium", "France", "Germany", "Netherlands"}
	for i := range want {
		if opts[i] != want[i] {
			t.Fatalf("got %v, want %v", opts, want)
		}
	}
}

func TestSelectOptionsMediumFallsBackToContinent(t *testing.T) {
	catalog := testCatalog()
	idx := testIndex(t)
	entry := findCountry(t, catalog, "Kazakhstan")

	// Kazakhstan is alone in Central Asia, so the pool widens to Asia,
	// which holds exactly four entries.
	opts := SelectOptions(testRand(11), entry.Name, FieldCountry, Medium, entry, catalog, idx)
	sort.Strings(opts)
	want := []string{"Kazakhstan", "Malaysia", "Thailand", "Vietnam"}
	for i := range want {
		if opts[i] != want[i] {
			t.Fatalf("got %v, want %v", opts, want)
		}
	}
}

func TestSelectOptionsHardTopsUpFromCatalog(t *testing.T) {
	catalog := testCatalog()
	idx := testIndex(t)
	entry := findCountry(t, catalog, "Kenya")

	// Africa holds only three entries; the fourth option must come from
	// the wider catalog.
	opts := SelectOptions(testRand(11), entry.Name, FieldCountry, Hard, entry, catalog, idx)
	if len(opts) != OptionCount {
		t.Fatalf("got %d options", len(opts))
	}
	african := map[string]bool{"Kenya": true, "Tanzania": true, "Uganda": true}
	outside := 0
	for _, o := range opts {
		if !african[o] {
			outside++
		}
	}
	if outside != 1 {
		t.Fatalf("want exactly one top-up option outside Africa, got %d in %v", outside, opts)
	}
}

func TestSelectOptionsCapitalField(t *testing.T) {
	catalog := testCatalog()
	idx := testIndex(t)
	entry := findCountry(t, catalog, "Vietnam")

	opts := SelectOptions(testRand(11), entry.Capital, FieldCapital, Medium, entry, catalog, idx)
	capitals := map[string]bool{}
	for _, c := range catalog {
		capitals[c.Capital] = true
	}
	hasCorrect := false
	for _, o := range opts {
		if !capitals[o] {
			t.Errorf("option %q is not a catalog capital", o)
		}
		if o == "Hanoi" {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		t.Fatalf("correct capital missing from %v", opts)
	}
}
