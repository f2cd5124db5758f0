package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/ports"
)

// ImportHandler compiles the source tables into a table store.
type ImportHandler struct {
	source ports.DataSource
	store  ports.TableStore
}

// NewImportHandler creates a new import handler.
func NewImportHandler(source ports.DataSource, store ports.TableStore) *ImportHandler {
	return &ImportHandler{
		source: source,
		store:  store,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Parse and count without writing
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Pokemon   int
	Locations int
	DryRun    bool
	Record    *entities.ImportRecord // nil on dry runs
}

// Handle reads both tables from the source and replaces the store's contents.
// Rows are copied as read: exclusion and deduplication happen at browse time.
func (h *ImportHandler) Handle(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	pokemon, err := h.source.LoadPokemon(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading pokemon table: %w", err)
	}

	locations, err := h.source.LoadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading location table: %w", err)
	}

	result := &ImportResult{
		Pokemon:   len(pokemon),
		Locations: len(locations),
		DryRun:    opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if err := h.store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if err := h.store.ReplaceTables(ctx, pokemon, locations); err != nil {
		return nil, fmt.Errorf("writing tables: %w", err)
	}

	rec, err := h.store.LatestImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading import record: %w", err)
	}
	result.Record = rec

	return result, nil
}
