package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestNames(t *testing.T) {
	names := []string{"Bulbasaur", "Charizard", "Pikachu", "Raichu", "Wingull"}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "one typo", query: "charzard", want: []string{"Charizard"}},
		{name: "transposed letters", query: "bulbasuar", want: []string{"Bulbasaur"}},
		{name: "padded and upper case", query: "  PIKACHUU ", want: []string{"Pikachu"}},
		{name: "exact match needs no suggestion", query: " pikachu", want: nil},
		{name: "blank query", query: "  ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestNames(names, tt.query))
		})
	}
}

func TestSuggestNames_TooFar(t *testing.T) {
	assert.Empty(t, SuggestNames([]string{"Bulbasaur", "Pikachu"}, "mew"))
}

func TestSuggestNames_Limit(t *testing.T) {
	names := []string{"Abru", "Abri", "Abre", "Abra", "Abro"}

	got := SuggestNames(names, "abrx")

	assert.Equal(t, []string{"Abra", "Abre", "Abri"}, got)
	assert.Len(t, got, MaxSuggestions)
}

func TestSuggestNames_SkipsSpellingVariants(t *testing.T) {
	got := SuggestNames([]string{"Pikachu", " pikachu"}, "pikachuu")

	assert.Equal(t, []string{"Pikachu"}, got)
}
