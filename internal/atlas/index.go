package atlas

// Index holds the derived lookup structures over a catalog. Built once at
// startup and read-only afterwards.
//
// The tier buckets are cumulative on purpose: the medium pool includes the
// easy countries so a medium game is not restricted to mid-tier obscurity,
// and the hard pool is always the full catalog.
type Index struct {
	ByTier      map[Tier][]Country
	ByContinent map[Continent][]Country
	ByRegion    map[string][]Country
}

// BuildIndex validates the catalog and builds the derived indices in a
// single O(n) pass. An empty or malformed catalog is a configuration error.
func BuildIndex(catalog []Country) (*Index, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	idx := &Index{
		ByTier:      make(map[Tier][]Country, 3),
		ByContinent: make(map[Continent][]Country, len(Continents)),
		ByRegion:    make(map[string][]Country),
	}

	for i, c := range catalog {
		if err := validate(i, c); err != nil {
			return nil, err
		}

		if c.Tier == TierEasy {
			idx.ByTier[TierEasy] = append(idx.ByTier[TierEasy], c)
		}
		if c.Tier == TierEasy || c.Tier == TierMedium {
			idx.ByTier[TierMedium] = append(idx.ByTier[TierMedium], c)
		}
		idx.ByTier[TierHard] = append(idx.ByTier[TierHard], c)

		idx.ByContinent[c.Continent] = append(idx.ByContinent[c.Continent], c)
		idx.ByRegion[c.Region] = append(idx.ByRegion[c.Region], c)
	}

	return idx, nil
}
