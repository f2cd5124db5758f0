package services

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// MaxSuggestions caps the number of "did you mean" names returned.
const MaxSuggestions = 3

// SuggestNames returns up to MaxSuggestions names close to query, closest
// first. An exact (normalized) match returns nothing: there is nothing to
// correct.
func SuggestNames(names []string, query string) []string {
	q := entities.NormalizeName(query)
	if q == "" {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}

	limit := suggestionLimit(len(q))
	seen := make(map[string]bool, len(names))
	var candidates []candidate
	for _, name := range names {
		key := entities.NormalizeName(name)
		if key == q {
			return nil
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		dist := levenshtein.ComputeDistance(q, key)
		if dist > limit {
			continue
		}
		candidates = append(candidates, candidate{name: name, dist: dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
