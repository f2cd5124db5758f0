package entities

// Level bounds for wild encounters.
const (
	MinLevel = 1
	MaxLevel = 100
)

// Location is a single encounter opportunity: a Pokémon that can be found in
// an area with a given method between two levels.
type Location struct {
	PokemonName string `json:"pokemon"` // Free text, matched with NormalizeName
	Area        string `json:"area"`
	Method      string `json:"method"`
	MinLevel    int    `json:"min_level"`
	MaxLevel    int    `json:"max_level"`
}
