// Package parsers reads the Pokémon and location tables from CSV and JSON.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

// Table names used in load errors.
const (
	TablePokemon   = "pokemon"
	TableLocations = "locations"
)

// Parser defines the interface for parsing the two source tables.
type Parser interface {
	ParsePokemon(r io.Reader, cols config.PokemonColumns) ([]entities.Pokemon, error)
	ParseLocations(r io.Reader, cols config.LocationColumns) ([]entities.Location, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return ForFormat(ext)
}
