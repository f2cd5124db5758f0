package entities

import "strings"

// NormalizeName converts a name to its join key: trimmed and lowercased.
// Source tables pad names inconsistently, so every name or category
// comparison goes through this function.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NameSet is a set of normalized names.
type NameSet map[string]struct{}

// NewNameSet builds a set from raw names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		set.Add(n)
	}
	return set
}

// Add inserts a raw name.
func (s NameSet) Add(name string) {
	s[NormalizeName(name)] = struct{}{}
}

// Has reports whether a raw name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[NormalizeName(name)]
	return ok
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
