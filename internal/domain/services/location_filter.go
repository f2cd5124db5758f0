package services

import (
	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// locationPredicate is LocationCriteria compiled for repeated evaluation.
type locationPredicate struct {
	area    string
	methods entities.NameSet
	levels  Range
	ceiling int
}

func compileLocations(c LocationCriteria, caps entities.LevelCaps) (locationPredicate, error) {
	if err := c.Validate(caps); err != nil {
		return locationPredicate{}, err
	}

	p := locationPredicate{
		area:    entities.NormalizeName(c.Area),
		methods: nonEmptySet(c.Methods),
		levels:  Range{Lo: entities.MinLevel, Hi: entities.MaxLevel},
		ceiling: entities.NoCapCeiling,
	}
	if c.Levels != nil {
		p.levels = *c.Levels
	}
	if c.Cap != "" {
		lc, err := caps.Lookup(c.Cap)
		if err != nil {
			return locationPredicate{}, err
		}
		p.ceiling = lc.Ceiling
	}
	return p, nil
}

func (p locationPredicate) matches(l entities.Location) bool {
	if p.area != "" && entities.NormalizeName(l.Area) != p.area {
		return false
	}
	if p.methods != nil && !p.methods.Has(l.Method) {
		return false
	}
	if l.MinLevel < p.levels.Lo || l.MaxLevel > p.levels.Hi {
		return false
	}
	return l.MaxLevel <= p.ceiling
}

// FilterLocations returns the rows matching every active constraint. Rows are
// never deduplicated. The input is not modified.
func FilterLocations(locations []entities.Location, c LocationCriteria, caps entities.LevelCaps) ([]entities.Location, error) {
	pred, err := compileLocations(c, caps)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Location, 0, len(locations))
	for _, l := range locations {
		if pred.matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}
