package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

func locationAreas(locations []entities.Location) []string {
	out := make([]string, len(locations))
	for i, l := range locations {
		out[i] = l.PokemonName + "@" + l.Area
	}
	return out
}

func TestFilterLocations(t *testing.T) {
	caps := entities.NewLevelCaps(entities.DefaultLevelCaps)

	tests := []struct {
		name     string
		criteria LocationCriteria
		want     []string
	}{
		{
			name: "no constraints",
			want: []string{"bulbasaur @Route 101", "Zigzagoon@Route 101", " ZIGZAGOON@Route 102", "Wingull@Route 104", "Wingull@Route 104", "Pikachu@Safari Zone", "Charizard@Victory Road", "Missingno@Cinnabar Coast"},
		},
		{
			name:     "area",
			criteria: LocationCriteria{Area: "route 101 "},
			want:     []string{"bulbasaur @Route 101", "Zigzagoon@Route 101"},
		},
		{
			name:     "methods ignore padding",
			criteria: LocationCriteria{Methods: []string{"surfing"}},
			want:     []string{"Wingull@Route 104", "Missingno@Cinnabar Coast"},
		},
		{
			name:     "level range contains both bounds",
			criteria: LocationCriteria{Levels: &Range{Lo: 2, Hi: 4}},
			want:     []string{"bulbasaur @Route 101", "Zigzagoon@Route 101"},
		},
		{
			name:     "cap",
			criteria: LocationCriteria{Cap: "Pre Roxanne (Cap 15)"},
			want:     []string{"bulbasaur @Route 101", "Zigzagoon@Route 101", " ZIGZAGOON@Route 102", "Wingull@Route 104"},
		},
		{
			name:     "cap and method",
			criteria: LocationCriteria{Cap: "Pre Roxanne (Cap 15)", Methods: []string{"Old Rod"}},
			want:     []string{"Wingull@Route 104"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterLocations(testLocations(), tt.criteria, caps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, locationAreas(got))
		})
	}
}

func TestFilterLocations_NoCapAdmitsWholeDomain(t *testing.T) {
	caps := entities.NewLevelCaps(entities.DefaultLevelCaps)

	var locations []entities.Location
	for lvl := entities.MinLevel; lvl <= entities.MaxLevel; lvl++ {
		locations = append(locations, entities.Location{PokemonName: "Ditto", Area: "Anywhere", Method: "Grass", MinLevel: lvl, MaxLevel: lvl})
	}

	got, err := FilterLocations(locations, LocationCriteria{Cap: entities.NoCapLabel}, caps)
	require.NoError(t, err)
	assert.Len(t, got, len(locations))
}

func TestFilterLocations_InvalidCriteria(t *testing.T) {
	caps := entities.NewLevelCaps(entities.DefaultLevelCaps)

	got, err := FilterLocations(testLocations(), LocationCriteria{Cap: "Pre Giovanni"}, caps)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrFilterInput)
	assert.Nil(t, got)
}

func TestFilterLocations_KeepsDuplicates(t *testing.T) {
	caps := entities.NewLevelCaps(nil)
	row := entities.Location{PokemonName: "Wingull", Area: "Route 104", Method: "Surfing", MinLevel: 10, MaxLevel: 20}

	got, err := FilterLocations([]entities.Location{row, row}, LocationCriteria{}, caps)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
