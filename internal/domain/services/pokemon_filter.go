package services

import (
	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// pokemonPredicate is PokemonCriteria compiled for repeated evaluation.
type pokemonPredicate struct {
	stats       map[entities.Stat]Range
	type1       entities.NameSet
	type2       entities.NameSet
	generations map[int]struct{}
	name        string
}

func compilePokemon(c PokemonCriteria) pokemonPredicate {
	p := pokemonPredicate{
		stats: c.Stats,
		type1: nonEmptySet(c.Type1),
		type2: nonEmptySet(c.Type2),
		name:  entities.NormalizeName(c.Name),
	}
	if len(c.Generations) > 0 {
		p.generations = make(map[int]struct{}, len(c.Generations))
		for _, g := range c.Generations {
			p.generations[g] = struct{}{}
		}
	}
	return p
}

func (p pokemonPredicate) matches(pk entities.Pokemon) bool {
	for stat, r := range p.stats {
		if !r.Contains(pk.Stats.Get(stat)) {
			return false
		}
	}
	if p.type1 != nil && !p.type1.Has(pk.Type1) {
		return false
	}
	if p.type2 != nil && (entities.NormalizeName(pk.Type2) == "" || !p.type2.Has(pk.Type2)) {
		return false
	}
	if p.generations != nil {
		if _, ok := p.generations[pk.Generation]; !ok {
			return false
		}
	}
	if p.name != "" && entities.NormalizeName(pk.Name) != p.name {
		return false
	}
	return true
}

// FilterPokemon returns the rows matching every active constraint, with
// duplicate (name, form) rows collapsed to the first occurrence. The input
// is not modified. Criteria are assumed valid; see PokemonCriteria.Validate.
func FilterPokemon(pokemon []entities.Pokemon, c PokemonCriteria) []entities.Pokemon {
	pred := compilePokemon(c)

	out := make([]entities.Pokemon, 0, len(pokemon))
	for _, pk := range pokemon {
		if pred.matches(pk) {
			out = append(out, pk)
		}
	}
	return DedupPokemon(out)
}

// DedupPokemon keeps the first row for every (name, trimmed form) pair.
func DedupPokemon(pokemon []entities.Pokemon) []entities.Pokemon {
	seen := make(map[entities.FormKey]struct{}, len(pokemon))
	out := make([]entities.Pokemon, 0, len(pokemon))
	for _, pk := range pokemon {
		key := pk.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, pk)
	}
	return out
}

// nonEmptySet returns nil when values holds nothing but blanks, so that the
// dimension stays unconstrained.
func nonEmptySet(values []string) entities.NameSet {
	var set entities.NameSet
	for _, v := range values {
		if entities.NormalizeName(v) == "" {
			continue
		}
		if set == nil {
			set = entities.NewNameSet()
		}
		set.Add(v)
	}
	return set
}
