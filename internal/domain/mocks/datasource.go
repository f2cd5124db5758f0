// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// DataSource is a mock implementation of ports.DataSource.
type DataSource struct {
	Pokemon   []entities.Pokemon
	Locations []entities.Location

	PokemonErr   error
	LocationsErr error

	// Call tracking
	LoadPokemonCallCount   int
	LoadLocationsCallCount int
}

// LoadPokemon returns a copy of the configured rows or error.
func (m *DataSource) LoadPokemon(ctx context.Context) ([]entities.Pokemon, error) {
	m.LoadPokemonCallCount++
	if m.PokemonErr != nil {
		return nil, m.PokemonErr
	}
	return append([]entities.Pokemon(nil), m.Pokemon...), nil
}

// LoadLocations returns a copy of the configured rows or error.
func (m *DataSource) LoadLocations(ctx context.Context) ([]entities.Location, error) {
	m.LoadLocationsCallCount++
	if m.LocationsErr != nil {
		return nil, m.LocationsErr
	}
	return append([]entities.Location(nil), m.Locations...), nil
}
