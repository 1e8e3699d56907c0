package atlas

import (
	"errors"
	"fmt"
)

// Continent enumerates the six continent buckets used by the catalog.
type Continent string

const (
	Africa       Continent = "Africa"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Oceania      Continent = "Oceania"
)

// Continents lists every valid continent value.
var Continents = []Continent{Africa, Asia, Europe, NorthAmerica, SouthAmerica, Oceania}

// Tier classifies how familiar a country is expected to be to players.
// It is a property of the country itself, distinct from the difficulty
// setting a player picks; the two only meet when candidate pools are built.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Country is a single immutable catalog entry.
type Country struct {
	Name      string
	Capital   string
	FlagCode  string // ISO-3166 alpha-2, lowercase
	Continent Continent
	Region    string
	Tier      Tier
}

// ErrEmptyCatalog is returned when an index is requested over no entries.
var ErrEmptyCatalog = errors.New("atlas: empty catalog")

// validate checks the catalog entry invariants: no empty fields and
// recognized continent/tier values.
func validate(i int, c Country) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("atlas: entry %d: missing name", i)
	case c.Capital == "":
		return fmt.Errorf("atlas: entry %d (%s): missing capital", i, c.Name)
	case len(c.FlagCode) != 2:
		return fmt.Errorf("atlas: entry %d (%s): bad flag code %q", i, c.Name, c.FlagCode)
	case c.Region == "":
		return fmt.Errorf("atlas: entry %d (%s): missing region", i, c.Name)
	}
	switch c.Tier {
	case TierEasy, TierMedium, TierHard:
	default:
		return fmt.Errorf("atlas: entry %d (%s): bad tier %q", i, c.Name, c.Tier)
	}
	switch c.Continent {
	case Africa, Asia, Europe, NorthAmerica, SouthAmerica, Oceania:
	default:
		return fmt.Errorf("atlas: entry %d (%s): bad continent %q", i, c.Name, c.Continent)
	}
	return nil
}
