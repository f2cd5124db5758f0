package services

import (
	"fmt"
	"sort"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// Range is an inclusive [Lo, Hi] bound.
type Range struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Lo && v <= r.Hi
}

func (r Range) validate(field string, min, max int) error {
	if r.Lo > r.Hi {
		return &entities.FilterInputError{Field: field, Reason: fmt.Sprintf("lower bound %d exceeds upper bound %d", r.Lo, r.Hi)}
	}
	if r.Lo < min || r.Hi > max {
		return &entities.FilterInputError{Field: field, Reason: fmt.Sprintf("range %d-%d is outside %d-%d", r.Lo, r.Hi, min, max)}
	}
	return nil
}

// PokemonCriteria selects Pokémon. Every field is optional; a zero value
// leaves that dimension unconstrained. Within a list the values are OR-ed,
// across fields the constraints are AND-ed.
type PokemonCriteria struct {
	Stats       map[entities.Stat]Range `json:"stats,omitempty"`
	Type1       []string                `json:"type1,omitempty"`
	Type2       []string                `json:"type2,omitempty"`
	Generations []int                   `json:"generations,omitempty"`
	Name        string                  `json:"name,omitempty"`
}

// Validate checks every stat range against its domain and every generation
// against the known buckets.
func (c PokemonCriteria) Validate() error {
	stats := make([]string, 0, len(c.Stats))
	for s := range c.Stats {
		stats = append(stats, string(s))
	}
	sort.Strings(stats)

	for _, s := range stats {
		stat := entities.Stat(s)
		domain, ok := entities.DomainOf(stat)
		if !ok {
			return &entities.FilterInputError{Field: s, Reason: "unknown stat"}
		}
		if err := c.Stats[stat].validate(s, 0, domain.Max); err != nil {
			return err
		}
	}

	for _, g := range c.Generations {
		if g < 1 || g > entities.MaxGeneration {
			return &entities.FilterInputError{Field: "generation", Reason: fmt.Sprintf("%d is not between 1 and %d", g, entities.MaxGeneration)}
		}
	}

	return nil
}

// LocationCriteria selects encounter locations. A zero value matches every row.
type LocationCriteria struct {
	Area    string   `json:"area,omitempty"`
	Methods []string `json:"methods,omitempty"`
	Levels  *Range   `json:"levels,omitempty"` // nil means the whole level domain
	Cap     string   `json:"cap,omitempty"`    // Level cap label; empty means no cap
}

// Validate checks the level range and resolves the cap label.
func (c LocationCriteria) Validate(caps entities.LevelCaps) error {
	if c.Levels != nil {
		if err := c.Levels.validate("levels", entities.MinLevel, entities.MaxLevel); err != nil {
			return err
		}
	}
	if c.Cap != "" {
		if _, err := caps.Lookup(c.Cap); err != nil {
			return &entities.FilterInputError{Field: "cap", Reason: err.Error()}
		}
	}
	return nil
}

// BrowseCriteria combines both sides of a query.
type BrowseCriteria struct {
	Pokemon   PokemonCriteria  `json:"pokemon"`
	Locations LocationCriteria `json:"locations"`
}
