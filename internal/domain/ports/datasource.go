// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// DataSource reads the two source tables.
// Implementations return rows as stored; derived fields such as
// Pokemon.Generation are filled in by the dataset loader.
type DataSource interface {
	// LoadPokemon reads every row of the Pokémon table.
	LoadPokemon(ctx context.Context) ([]entities.Pokemon, error)

	// LoadLocations reads every row of the location table.
	LoadLocations(ctx context.Context) ([]entities.Location, error)
}

// TableStore is a DataSource that can also be written to.
// It is used to compile tables into a single file; a loaded dataset is never
// written back.
type TableStore interface {
	DataSource

	// EnsureSchema creates the tables if they don't exist.
	EnsureSchema(ctx context.Context) error

	// ReplaceTables replaces the stored tables with the given rows.
	ReplaceTables(ctx context.Context, pokemon []entities.Pokemon, locations []entities.Location) error

	// LatestImport returns the most recent ReplaceTables record, or nil if
	// nothing was imported yet.
	LatestImport(ctx context.Context) (*entities.ImportRecord, error)

	// Close closes the underlying storage.
	Close() error
}
