package services

import (
	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// CrossReference keeps the locations whose Pokémon appears in pokemon and
// the Pokémon that appear in locations. Both sides are computed from the
// inputs as given, so the result does not depend on evaluation order, and
// applying CrossReference to its own output returns it unchanged.
func CrossReference(pokemon []entities.Pokemon, locations []entities.Location) ([]entities.Pokemon, []entities.Location) {
	pokemonNames := entities.NewNameSet()
	for _, p := range pokemon {
		pokemonNames.Add(p.Name)
	}
	locationNames := entities.NewNameSet()
	for _, l := range locations {
		locationNames.Add(l.PokemonName)
	}

	keptPokemon := make([]entities.Pokemon, 0, len(pokemon))
	for _, p := range pokemon {
		if locationNames.Has(p.Name) {
			keptPokemon = append(keptPokemon, p)
		}
	}

	keptLocations := make([]entities.Location, 0, len(locations))
	for _, l := range locations {
		if pokemonNames.Has(l.PokemonName) {
			keptLocations = append(keptLocations, l)
		}
	}

	return keptPokemon, keptLocations
}

// Group is one Pokémon with the locations it can be found in.
type Group struct {
	Pokemon   entities.Pokemon    `json:"pokemon"`
	Locations []entities.Location `json:"locations"`
}

// GroupByPokemon pairs every Pokémon with its locations, matched by
// normalized name. Forms sharing a name share the same locations. Group
// order follows pokemon; location order follows locations.
func GroupByPokemon(pokemon []entities.Pokemon, locations []entities.Location) []Group {
	byName := make(map[string][]entities.Location)
	for _, l := range locations {
		key := entities.NormalizeName(l.PokemonName)
		byName[key] = append(byName[key], l)
	}

	groups := make([]Group, 0, len(pokemon))
	for _, p := range pokemon {
		groups = append(groups, Group{
			Pokemon:   p,
			Locations: byName[entities.NormalizeName(p.Name)],
		})
	}
	return groups
}
