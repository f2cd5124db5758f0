package ui

import (
	"fmt"
	"strconv"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

// PokemonHeaders are the column titles for Pokémon rows.
var PokemonHeaders = []string{"#", "Name", "Form", "Type 1", "Type 2", "HP", "Atk", "Def", "SpA", "SpD", "Spe", "BST", "Gen"}

// PokemonRow formats a Pokémon for a table row.
func PokemonRow(p entities.Pokemon) []string {
	s := p.Stats
	return []string{
		fmt.Sprintf("%03d", p.Number),
		p.Name,
		p.Form,
		p.Type1,
		p.Type2,
		strconv.Itoa(s.HP),
		strconv.Itoa(s.Attack),
		strconv.Itoa(s.Defense),
		strconv.Itoa(s.SpAttack),
		strconv.Itoa(s.SpDefense),
		strconv.Itoa(s.Speed),
		strconv.Itoa(s.Total()),
		strconv.Itoa(p.Generation),
	}
}

// LocationHeaders are the column titles for location rows.
var LocationHeaders = []string{"Pokémon", "Area", "Method", "Min", "Max"}

// LocationRow formats a location for a table row.
func LocationRow(l entities.Location) []string {
	return []string{
		l.PokemonName,
		l.Area,
		l.Method,
		strconv.Itoa(l.MinLevel),
		strconv.Itoa(l.MaxLevel),
	}
}

// Typing joins the two types, e.g. "Grass/Poison".
func Typing(p entities.Pokemon) string {
	if p.Type2 == "" {
		return p.Type1
	}
	return p.Type1 + "/" + p.Type2
}
