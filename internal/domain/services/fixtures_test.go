package services

import (
	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

func testPokemon() []entities.Pokemon {
	return []entities.Pokemon{
		{Number: 1, Name: "Bulbasaur", Type1: "Grass", Type2: "Poison",
			Stats: entities.Stats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}},
		{Number: 1, Name: "Bulbasaur", Type1: "Grass", Type2: "Poison", // duplicate source row
			Stats: entities.Stats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}},
		{Number: 6, Name: "Charizard", Type1: "Fire", Type2: "Flying",
			Stats: entities.Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100}},
		{Number: 6, Name: "Charizard", Type1: "Fire", Type2: "Dragon", Form: "Mega X",
			Stats: entities.Stats{HP: 78, Attack: 130, Defense: 111, SpAttack: 130, SpDefense: 85, Speed: 100}},
		{Number: 25, Name: "Pikachu", Type1: "Electric",
			Stats: entities.Stats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}},
		{Number: 263, Name: "Zigzagoon", Type1: "Normal",
			Stats: entities.Stats{HP: 38, Attack: 30, Defense: 41, SpAttack: 30, SpDefense: 41, Speed: 60}},
		{Number: 263, Name: "Zigzagoon", Type1: "Dark", Type2: "Normal", Form: "Galarian ",
			Stats: entities.Stats{HP: 38, Attack: 30, Defense: 41, SpAttack: 30, SpDefense: 41, Speed: 60}},
		{Number: 278, Name: "Wingull", Type1: "Water", Type2: "Flying",
			Stats: entities.Stats{HP: 40, Attack: 30, Defense: 30, SpAttack: 55, SpDefense: 30, Speed: 85}},
		{Number: 479, Name: "Rotom", Type1: "Electric", Type2: "Ghost",
			Stats: entities.Stats{HP: 50, Attack: 50, Defense: 77, SpAttack: 95, SpDefense: 77, Speed: 91}},
		{Number: 906, Name: "Sprigatito", Type1: "Grass",
			Stats: entities.Stats{HP: 40, Attack: 61, Defense: 54, SpAttack: 45, SpDefense: 45, Speed: 65}},
	}
}

func testLocations() []entities.Location {
	return []entities.Location{
		{PokemonName: "bulbasaur ", Area: "Route 101", Method: "Grass", MinLevel: 2, MaxLevel: 4},
		{PokemonName: "Zigzagoon", Area: "Route 101", Method: "Grass", MinLevel: 2, MaxLevel: 3},
		{PokemonName: " ZIGZAGOON", Area: "Route 102", Method: " Grass", MinLevel: 3, MaxLevel: 5},
		{PokemonName: "Wingull", Area: "Route 104", Method: "Surfing ", MinLevel: 10, MaxLevel: 20},
		{PokemonName: "Wingull", Area: "Route 104", Method: "Old Rod", MinLevel: 5, MaxLevel: 10},
		{PokemonName: "Pikachu", Area: "Safari Zone", Method: "Grass", MinLevel: 25, MaxLevel: 27},
		{PokemonName: "Charizard", Area: "Victory Road", Method: "Gift", MinLevel: 50, MaxLevel: 50},
		{PokemonName: "Missingno", Area: "Cinnabar Coast", Method: "Surfing", MinLevel: 80, MaxLevel: 100},
	}
}

func testDataset() *Dataset {
	return NewDataset(testPokemon(), testLocations())
}

func pokemonKeys(pokemon []entities.Pokemon) map[entities.FormKey]bool {
	keys := make(map[entities.FormKey]bool, len(pokemon))
	for _, p := range pokemon {
		keys[p.Key()] = true
	}
	return keys
}

func pokemonNames(pokemon []entities.Pokemon) []string {
	names := make([]string, len(pokemon))
	for i, p := range pokemon {
		names[i] = p.Name
	}
	return names
}
