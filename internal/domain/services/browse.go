// Package services holds the filtering and cross-referencing core.
package services

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// BrowseResult is the cross-referenced view handed to presentation.
type BrowseResult struct {
	Snapshot    string              `json:"snapshot"`
	Pokemon     []entities.Pokemon  `json:"pokemon"`
	Locations   []entities.Location `json:"locations"`
	Groups      []Group             `json:"-"`
	Suggestions []string            `json:"suggestions,omitempty"` // Close names when Name matched nothing
}

// Empty reports whether nothing matched. An empty result is not an error.
func (r *BrowseResult) Empty() bool {
	return len(r.Pokemon) == 0 && len(r.Locations) == 0
}

// BrowseService runs filter passes against a dataset snapshot.
type BrowseService struct {
	caps   entities.LevelCaps
	logger *zap.Logger
}

// NewBrowseService creates a new browse service.
func NewBrowseService(caps entities.LevelCaps, logger *zap.Logger) *BrowseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseService{
		caps:   caps,
		logger: logger,
	}
}

// Caps returns the level cap enumeration, loosest last.
func (s *BrowseService) Caps() entities.LevelCaps {
	return append(entities.LevelCaps(nil), s.caps...)
}

// Validate checks both sides of the criteria without running a pass.
func (s *BrowseService) Validate(c BrowseCriteria) error {
	if err := c.Pokemon.Validate(); err != nil {
		return err
	}
	return c.Locations.Validate(s.caps)
}

// Browse filters both tables, cross-references the two results and sorts
// them for display: Pokémon by number, locations by area, method and name.
func (s *BrowseService) Browse(ds *Dataset, c BrowseCriteria) (*BrowseResult, error) {
	if err := s.Validate(c); err != nil {
		return nil, err
	}

	pokemon := FilterPokemon(ds.pokemon, c.Pokemon)
	locations, err := FilterLocations(ds.locations, c.Locations, s.caps)
	if err != nil {
		return nil, err
	}

	pokemon, locations = CrossReference(pokemon, locations)
	SortPokemon(pokemon)
	SortLocations(locations)

	result := &BrowseResult{
		Snapshot:  ds.id,
		Pokemon:   pokemon,
		Locations: locations,
		Groups:    GroupByPokemon(pokemon, locations),
	}
	if c.Pokemon.Name != "" && !s.nameExists(ds, c.Pokemon.Name) {
		result.Suggestions = SuggestNames(ds.Facets().Names, c.Pokemon.Name)
	}

	s.logger.Debug("Browse pass",
		zap.String("snapshot", ds.id),
		zap.Int("pokemon", len(result.Pokemon)),
		zap.Int("locations", len(result.Locations)),
		zap.Strings("suggestions", result.Suggestions))

	return result, nil
}

func (s *BrowseService) nameExists(ds *Dataset, name string) bool {
	key := entities.NormalizeName(name)
	for _, p := range ds.pokemon {
		if entities.NormalizeName(p.Name) == key {
			return true
		}
	}
	return false
}

// SortPokemon orders by number, then name, then form.
func SortPokemon(pokemon []entities.Pokemon) {
	sort.SliceStable(pokemon, func(i, j int) bool {
		a, b := pokemon[i], pokemon[j]
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Form < b.Form
	})
}

// SortLocations orders by area, method, then Pokémon name.
func SortLocations(locations []entities.Location) {
	sort.SliceStable(locations, func(i, j int) bool {
		a, b := locations[i], locations[j]
		if a.Area != b.Area {
			return a.Area < b.Area
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		return a.PokemonName < b.PokemonName
	})
}
