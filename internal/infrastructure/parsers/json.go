package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

// JSONParser parses tables stored as a JSON array of objects keyed by
// column name.
type JSONParser struct{}

// ParsePokemon reads the Pokémon table.
func (p *JSONParser) ParsePokemon(r io.Reader, cols config.PokemonColumns) ([]entities.Pokemon, error) {
	objects, err := p.decode(r, TablePokemon)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Pokemon, 0, len(objects))
	for i, obj := range objects {
		line := i + 1
		if col, ok := missingColumn(obj.has, cols.Required()); ok {
			return nil, &entities.LoadError{Table: TablePokemon, Line: line, Column: col, Err: errMissingColumn}
		}
		pk, err := pokemonFromRow(obj.get, cols, line)
		if err != nil {
			return nil, err
		}
		out = append(out, pk)
	}
	return out, nil
}

// ParseLocations reads the location table.
func (p *JSONParser) ParseLocations(r io.Reader, cols config.LocationColumns) ([]entities.Location, error) {
	objects, err := p.decode(r, TableLocations)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Location, 0, len(objects))
	for i, obj := range objects {
		line := i + 1
		if col, ok := missingColumn(obj.has, cols.Required()); ok {
			return nil, &entities.LoadError{Table: TableLocations, Line: line, Column: col, Err: errMissingColumn}
		}
		loc, err := locationFromRow(obj.get, cols, line)
		if err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, nil
}

func (p *JSONParser) decode(r io.Reader, table string) ([]jsonObject, error) {
	var objects []jsonObject

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&objects); err != nil {
		return nil, &entities.LoadError{Table: table, Err: fmt.Errorf("parsing JSON: %w", err)}
	}

	return objects, nil
}

// jsonObject is one row. Values keep their raw JSON text so that numbers and
// strings go through the same conversion as CSV cells.
type jsonObject map[string]json.RawMessage

func (o jsonObject) has(col string) bool {
	_, ok := o[col]
	return ok
}

func (o jsonObject) get(col string) string {
	raw, ok := o[col]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
