package parsers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

var errMissingColumn = errors.New("missing required column")

// fieldFunc returns the raw value of a column in the current row.
type fieldFunc func(col string) string

// intField binds a column to the record field it fills.
type intField struct {
	col string
	dst *int
}

func pokemonFromRow(get fieldFunc, cols config.PokemonColumns, line int) (entities.Pokemon, error) {
	p := entities.Pokemon{
		Name:  get(cols.Name),
		Type1: get(cols.Type1),
		Type2: strings.TrimSpace(get(cols.Type2)),
		Form:  get(cols.Form),
	}

	fields := []intField{
		{cols.Number, &p.Number},
		{cols.HP, &p.Stats.HP},
		{cols.Attack, &p.Stats.Attack},
		{cols.Defense, &p.Stats.Defense},
		{cols.SpAttack, &p.Stats.SpAttack},
		{cols.SpDefense, &p.Stats.SpDefense},
		{cols.Speed, &p.Stats.Speed},
	}
	if err := parseInts(get, TablePokemon, line, fields); err != nil {
		return entities.Pokemon{}, err
	}

	return p, nil
}

func locationFromRow(get fieldFunc, cols config.LocationColumns, line int) (entities.Location, error) {
	loc := entities.Location{
		PokemonName: get(cols.Pokemon),
		Area:        get(cols.Area),
		Method:      get(cols.Method),
	}

	fields := []intField{
		{cols.MinLevel, &loc.MinLevel},
		{cols.MaxLevel, &loc.MaxLevel},
	}
	if err := parseInts(get, TableLocations, line, fields); err != nil {
		return entities.Location{}, err
	}

	return loc, nil
}

func parseInts(get fieldFunc, table string, line int, fields []intField) error {
	for _, f := range fields {
		n, err := parseInt(get(f.col))
		if err != nil {
			return &entities.LoadError{Table: table, Line: line, Column: f.col, Err: err}
		}
		*f.dst = n
	}
	return nil
}

// parseInt accepts plain integers and integral floats such as "45.0", which
// spreadsheet exports produce for numeric columns.
func parseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != float64(int(f)) {
		return 0, err
	}
	return int(f), nil
}

// missingColumn returns the first required column that is not present.
func missingColumn(present func(col string) bool, required []string) (string, bool) {
	for _, col := range required {
		if !present(col) {
			return col, true
		}
	}
	return "", false
}
