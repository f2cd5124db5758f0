package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/mocks"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

func testSource() *mocks.DataSource {
	return &mocks.DataSource{
		Pokemon: []entities.Pokemon{
			{Number: 1, Name: "Bulbasaur", Type1: "Grass", Type2: "Poison", Stats: entities.Stats{HP: 45, Speed: 45}},
			{Number: 6, Name: "Charizard", Type1: "Fire", Type2: "Dragon", Form: "Mega X", Stats: entities.Stats{HP: 78, Speed: 100}},
			{Number: 263, Name: "Zigzagoon", Type1: "Normal", Stats: entities.Stats{HP: 38, Speed: 60}},
		},
		Locations: []entities.Location{
			{PokemonName: "bulbasaur ", Area: "Route 101", Method: "Grass", MinLevel: 2, MaxLevel: 4},
			{PokemonName: "Zigzagoon", Area: "Route 102", Method: "Grass", MinLevel: 3, MaxLevel: 5},
			{PokemonName: "Zigzagoon", Area: "Route 118", Method: "Grass", MinLevel: 24, MaxLevel: 26},
		},
	}
}

func newTestBrowseHandler(source *mocks.DataSource) *BrowseHandler {
	loader := services.NewDatasetLoader(source, services.ExcludeFormsContaining("mega"), nil)
	service := services.NewBrowseService(entities.NewLevelCaps(entities.DefaultLevelCaps), nil)
	return NewBrowseHandler(loader, service)
}

func TestBrowseHandler_Handle(t *testing.T) {
	source := testSource()
	handler := newTestBrowseHandler(source)

	result, err := handler.Handle(context.Background(), services.BrowseCriteria{
		Locations: services.LocationCriteria{Cap: "Pre Roxanne (Cap 15)"},
	})

	require.NoError(t, err)
	require.Len(t, result.Pokemon, 2)
	assert.Equal(t, "Bulbasaur", result.Pokemon[0].Name)
	assert.Equal(t, "Zigzagoon", result.Pokemon[1].Name)
	assert.Len(t, result.Locations, 2)
}

func TestBrowseHandler_Handle_ReusesDataset(t *testing.T) {
	source := testSource()
	handler := newTestBrowseHandler(source)

	first, err := handler.Handle(context.Background(), services.BrowseCriteria{})
	require.NoError(t, err)
	second, err := handler.Handle(context.Background(), services.BrowseCriteria{
		Pokemon: services.PokemonCriteria{Type1: []string{"normal"}},
	})
	require.NoError(t, err)

	assert.Equal(t, first.Snapshot, second.Snapshot)
	assert.Equal(t, 1, source.LoadPokemonCallCount)
	assert.Equal(t, 1, source.LoadLocationsCallCount)
}

func TestBrowseHandler_Handle_InvalidCriteria(t *testing.T) {
	source := testSource()
	handler := newTestBrowseHandler(source)

	_, err := handler.Handle(context.Background(), services.BrowseCriteria{
		Pokemon: services.PokemonCriteria{Stats: map[entities.Stat]services.Range{entities.StatSpeed: {Lo: 90, Hi: 10}}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrFilterInput)
	assert.Equal(t, 0, source.LoadPokemonCallCount)
}

func TestBrowseHandler_Handle_LoadError(t *testing.T) {
	source := &mocks.DataSource{PokemonErr: &entities.LoadError{Table: "pokemon", Column: "HP", Err: errors.New("column not found")}}
	handler := newTestBrowseHandler(source)

	_, err := handler.Handle(context.Background(), services.BrowseCriteria{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading dataset")
	assert.ErrorIs(t, err, entities.ErrLoad)
}

func TestBrowseHandler_HandleOptions(t *testing.T) {
	handler := newTestBrowseHandler(testSource())

	opts, err := handler.HandleOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, opts.Pokemon)
	assert.Equal(t, 1, opts.Excluded)
	assert.Equal(t, 3, opts.Locations)
	assert.Equal(t, []string{"Bulbasaur", "Zigzagoon"}, opts.Facets.Names)
	assert.Equal(t, []string{"Route 101", "Route 102", "Route 118"}, opts.Facets.Areas)
	assert.Len(t, opts.Stats, len(entities.StatDomains))
	assert.Equal(t, entities.NoCapLabel, opts.Caps[len(opts.Caps)-1])
	assert.NotEmpty(t, opts.Snapshot)
}

func TestBrowseHandler_HandleCaps(t *testing.T) {
	source := testSource()
	handler := newTestBrowseHandler(source)

	caps := handler.HandleCaps()

	assert.Len(t, caps, len(entities.DefaultLevelCaps))
	assert.Equal(t, 15, caps[0].Ceiling)
	assert.Equal(t, 0, source.LoadPokemonCallCount)
}
