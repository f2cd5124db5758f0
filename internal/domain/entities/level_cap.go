package entities

import (
	"fmt"
	"sort"
)

// NoCapLabel is the label of the level cap that admits every encounter.
const NoCapLabel = "No Cap"

// NoCapCeiling is above the highest encounter level.
const NoCapCeiling = MaxLevel + 1

// LevelCap is a named ceiling on encounter levels tied to a progression milestone.
type LevelCap struct {
	Label   string `json:"label" yaml:"label"`
	Ceiling int    `json:"ceiling" yaml:"ceiling"`
}

// Admits reports whether an encounter with the given max level is under the cap.
func (c LevelCap) Admits(maxLevel int) bool {
	return maxLevel <= c.Ceiling
}

// MilestoneCap builds the label used for milestone caps, e.g. "Pre Roxanne (Cap 15)".
func MilestoneCap(milestone string, ceiling int) LevelCap {
	return LevelCap{
		Label:   fmt.Sprintf("Pre %s (Cap %d)", milestone, ceiling),
		Ceiling: ceiling,
	}
}

// DefaultLevelCaps is the built-in milestone enumeration.
var DefaultLevelCaps = []LevelCap{
	{Label: NoCapLabel, Ceiling: NoCapCeiling},
	MilestoneCap("Roxanne", 15),
	MilestoneCap("Brawly", 19),
	MilestoneCap("Wattson", 24),
	MilestoneCap("Flannery", 29),
	MilestoneCap("Norman", 31),
	MilestoneCap("Winona", 35),
	MilestoneCap("Tate & Liza", 44),
	MilestoneCap("Juan", 48),
	MilestoneCap("Elite Four", 58),
}

// LevelCaps is an ordered set of level caps.
type LevelCaps []LevelCap

// NewLevelCaps returns the caps sorted by ceiling. A "No Cap" entry is added
// when missing so that an unconstrained choice always exists.
func NewLevelCaps(caps []LevelCap) LevelCaps {
	out := make(LevelCaps, 0, len(caps)+1)
	hasNoCap := false
	for _, c := range caps {
		if NormalizeName(c.Label) == NormalizeName(NoCapLabel) {
			hasNoCap = true
		}
		out = append(out, c)
	}
	if !hasNoCap {
		out = append(out, LevelCap{Label: NoCapLabel, Ceiling: NoCapCeiling})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ceiling < out[j].Ceiling
	})
	return out
}

// Lookup finds a cap by label. Labels compare through NormalizeName.
func (cs LevelCaps) Lookup(label string) (LevelCap, error) {
	key := NormalizeName(label)
	for _, c := range cs {
		if NormalizeName(c.Label) == key {
			return c, nil
		}
	}
	return LevelCap{}, fmt.Errorf("%w: %q", ErrUnknownLevelCap, label)
}

// Labels returns the cap labels in order.
func (cs LevelCaps) Labels() []string {
	labels := make([]string, len(cs))
	for i, c := range cs {
		labels[i] = c.Label
	}
	return labels
}
