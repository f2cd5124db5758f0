package mocks

import (
	"context"
	"fmt"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// TableStore is a mock implementation of ports.TableStore.
type TableStore struct {
	DataSource

	EnsureSchemaErr  error
	ReplaceTablesErr error
	LatestImportErr  error
	CloseErr         error

	Imports []entities.ImportRecord

	// Call tracking
	EnsureSchemaCallCount  int
	ReplaceTablesCallCount int
	CloseCallCount         int
}

// EnsureSchema returns the configured error.
func (m *TableStore) EnsureSchema(ctx context.Context) error {
	m.EnsureSchemaCallCount++
	return m.EnsureSchemaErr
}

// ReplaceTables stores the rows so that later loads return them.
func (m *TableStore) ReplaceTables(ctx context.Context, pokemon []entities.Pokemon, locations []entities.Location) error {
	m.ReplaceTablesCallCount++
	if m.ReplaceTablesErr != nil {
		return m.ReplaceTablesErr
	}
	m.Pokemon = append([]entities.Pokemon(nil), pokemon...)
	m.Locations = append([]entities.Location(nil), locations...)
	m.Imports = append(m.Imports, entities.ImportRecord{
		ID:           fmt.Sprintf("import-%d", m.ReplaceTablesCallCount),
		PokemonRows:  len(pokemon),
		LocationRows: len(locations),
	})
	return nil
}

// LatestImport returns the last recorded import, or nil.
func (m *TableStore) LatestImport(ctx context.Context) (*entities.ImportRecord, error) {
	if m.LatestImportErr != nil {
		return nil, m.LatestImportErr
	}
	if len(m.Imports) == 0 {
		return nil, nil
	}
	rec := m.Imports[len(m.Imports)-1]
	return &rec, nil
}

// Close returns the configured error.
func (m *TableStore) Close() error {
	m.CloseCallCount++
	return m.CloseErr
}
