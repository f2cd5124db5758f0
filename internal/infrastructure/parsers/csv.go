package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

// CSVParser parses tables in CSV format with a header row.
type CSVParser struct{}

// ParsePokemon reads the Pokémon table.
func (p *CSVParser) ParsePokemon(r io.Reader, cols config.PokemonColumns) ([]entities.Pokemon, error) {
	var out []entities.Pokemon
	err := p.readTable(r, TablePokemon, cols.Required(), func(get fieldFunc, line int) error {
		pk, err := pokemonFromRow(get, cols, line)
		if err != nil {
			return err
		}
		out = append(out, pk)
		return nil
	})
	return out, err
}

// ParseLocations reads the location table.
func (p *CSVParser) ParseLocations(r io.Reader, cols config.LocationColumns) ([]entities.Location, error) {
	var out []entities.Location
	err := p.readTable(r, TableLocations, cols.Required(), func(get fieldFunc, line int) error {
		loc, err := locationFromRow(get, cols, line)
		if err != nil {
			return err
		}
		out = append(out, loc)
		return nil
	})
	return out, err
}

// readTable reads the header, checks required columns and calls fn per row.
func (p *CSVParser) readTable(r io.Reader, table string, required []string, fn func(fieldFunc, int) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader, table, required)
	if err != nil {
		return err
	}

	lineNum := 1 // Header is line 1
	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &entities.LoadError{Table: table, Line: lineNum, Err: err}
		}

		get := func(col string) string {
			return getColumn(record, colIndex, col)
		}
		if err := fn(get, lineNum); err != nil {
			return err
		}
	}
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader, table string, required []string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, &entities.LoadError{Table: table, Err: fmt.Errorf("reading CSV header: %w", err)}
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		colIndex[strings.TrimSpace(col)] = i
	}

	present := func(col string) bool {
		_, ok := colIndex[col]
		return ok
	}
	if col, ok := missingColumn(present, required); ok {
		return nil, &entities.LoadError{Table: table, Column: col, Err: errMissingColumn}
	}

	return colIndex, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
