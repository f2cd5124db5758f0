package entities

import "time"

// ImportRecord describes one write of both tables into a table store.
type ImportRecord struct {
	ID           string
	PokemonRows  int
	LocationRows int
	ImportedAt   time.Time
}
