// Package tablefile provides a DataSource reading the two tables from CSV or
// JSON files.
package tablefile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
	"github.com/ersonp/dexbrowse/internal/infrastructure/parsers"
)

// Source implements ports.DataSource over two table files.
type Source struct {
	pokemonPath   string
	locationsPath string
	columns       config.ColumnsConfig
}

// NewSource creates a file-backed data source.
func NewSource(data config.DataConfig, columns config.ColumnsConfig) (*Source, error) {
	if data.Pokemon == "" || data.Locations == "" {
		return nil, errors.New("pokemon and locations table paths are required")
	}
	for _, p := range []string{data.Pokemon, data.Locations} {
		if parsers.ForFile(p) == nil {
			return nil, fmt.Errorf("unsupported table format: %s (expected .csv or .json)", p)
		}
	}

	return &Source{
		pokemonPath:   data.Pokemon,
		locationsPath: data.Locations,
		columns:       columns,
	}, nil
}

// LoadPokemon reads the Pokémon table file.
func (s *Source) LoadPokemon(ctx context.Context) ([]entities.Pokemon, error) {
	var out []entities.Pokemon
	err := readFile(ctx, s.pokemonPath, parsers.TablePokemon, func(f *os.File) error {
		var err error
		out, err = parsers.ForFile(s.pokemonPath).ParsePokemon(f, s.columns.Pokemon)
		return err
	})
	return out, err
}

// LoadLocations reads the location table file.
func (s *Source) LoadLocations(ctx context.Context) ([]entities.Location, error) {
	var out []entities.Location
	err := readFile(ctx, s.locationsPath, parsers.TableLocations, func(f *os.File) error {
		var err error
		out, err = parsers.ForFile(s.locationsPath).ParseLocations(f, s.columns.Locations)
		return err
	})
	return out, err
}

func readFile(ctx context.Context, path, table string, parse func(*os.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return &entities.LoadError{Table: table, Err: fmt.Errorf("opening table file: %w", err)}
	}
	defer f.Close()

	return parse(f)
}
