// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for dex configuration.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Data      DataConfig          `yaml:"data,omitempty"`
	Columns   ColumnsConfig       `yaml:"columns,omitempty"`
	LevelCaps []entities.LevelCap `yaml:"level_caps,omitempty"`
	Log       LogConfig           `yaml:"log,omitempty"`
}

// DataConfig locates the two source tables.
type DataConfig struct {
	// Pokemon and Locations are table files (.csv or .json). Relative paths
	// are resolved against the directory holding .dex.
	Pokemon   string `yaml:"pokemon,omitempty"`
	Locations string `yaml:"locations,omitempty"`

	// SQLite, when its path is set, replaces the two table files.
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`

	// ExcludeForms drops Pokémon whose form label contains any of these
	// substrings (case-insensitive). An empty list keeps every form.
	ExcludeForms []string `yaml:"exclude_forms"`
}

// SQLiteConfig holds configuration for the SQLite table store.
type SQLiteConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ColumnsConfig maps record fields to source column names.
type ColumnsConfig struct {
	Pokemon   PokemonColumns  `yaml:"pokemon,omitempty"`
	Locations LocationColumns `yaml:"locations,omitempty"`
}

// PokemonColumns names the columns of the Pokémon table.
type PokemonColumns struct {
	Number    string `yaml:"number,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Type1     string `yaml:"type1,omitempty"`
	Type2     string `yaml:"type2,omitempty"`
	HP        string `yaml:"hp,omitempty"`
	Attack    string `yaml:"attack,omitempty"`
	Defense   string `yaml:"defense,omitempty"`
	SpAttack  string `yaml:"sp_attack,omitempty"`
	SpDefense string `yaml:"sp_defense,omitempty"`
	Speed     string `yaml:"speed,omitempty"`
	Form      string `yaml:"form,omitempty"` // Optional column
}

// Required returns the columns that must be present in the source.
func (c PokemonColumns) Required() []string {
	return []string{c.Number, c.Name, c.Type1, c.Type2, c.HP, c.Attack, c.Defense, c.SpAttack, c.SpDefense, c.Speed}
}

// LocationColumns names the columns of the location table.
type LocationColumns struct {
	Pokemon  string `yaml:"pokemon,omitempty"`
	Area     string `yaml:"area,omitempty"`
	Method   string `yaml:"method,omitempty"`
	MinLevel string `yaml:"min_level,omitempty"`
	MaxLevel string `yaml:"max_level,omitempty"`
}

// Required returns the columns that must be present in the source.
func (c LocationColumns) Required() []string {
	return []string{c.Pokemon, c.Area, c.Method, c.MinLevel, c.MaxLevel}
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	// File receives logs from the interactive browser, which owns the terminal.
	File string `yaml:"file,omitempty"`
}

// DefaultPokemonColumns returns the column names of the published Pokémon sheet.
func DefaultPokemonColumns() PokemonColumns {
	return PokemonColumns{
		Number:    "Number",
		Name:      "Name",
		Type1:     "Type 1",
		Type2:     "Type 2",
		HP:        "HP",
		Attack:    "Attack",
		Defense:   "Defense",
		SpAttack:  "Sp.Attack",
		SpDefense: "Sp.Defense",
		Speed:     "Speed",
		Form:      "Form",
	}
}

// DefaultLocationColumns returns the column names of the published location sheet.
func DefaultLocationColumns() LocationColumns {
	return LocationColumns{
		Pokemon:  "Pokémon",
		Area:     "Area",
		Method:   "Method",
		MinLevel: "Min Level",
		MaxLevel: "Max Level",
	}
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Pokemon:      filepath.Join("data", "pokemon.csv"),
			Locations:    filepath.Join("data", "locations.csv"),
			ExcludeForms: []string{"mega"},
		},
		Columns: ColumnsConfig{
			Pokemon:   DefaultPokemonColumns(),
			Locations: DefaultLocationColumns(),
		},
		LevelCaps: append([]entities.LevelCap(nil), entities.DefaultLevelCaps...),
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the .dex directory in the given path.
// A missing config file is not an error: defaults are used.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
		// Defaults + env only
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.resolvePaths(basePath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DEX_POKEMON_PATH"); v != "" {
		c.Data.Pokemon = v
	}
	if v := os.Getenv("DEX_LOCATIONS_PATH"); v != "" {
		c.Data.Locations = v
	}
	if v := os.Getenv("DEX_DB_PATH"); v != "" {
		c.Data.SQLite.Path = v
	}
	if v := os.Getenv("DEX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) resolvePaths(basePath string) {
	c.Data.Pokemon = resolve(basePath, c.Data.Pokemon)
	c.Data.Locations = resolve(basePath, c.Data.Locations)
	c.Data.SQLite.Path = resolve(basePath, c.Data.SQLite.Path)
	c.Log.File = resolve(basePath, c.Log.File)
}

func resolve(basePath, p string) string {
	if p == "" || p == ":memory:" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// Validate checks that required settings are present and consistent.
func (c *Config) Validate() error {
	if c.Data.SQLite.Path == "" {
		if c.Data.Pokemon == "" {
			return errors.New("data.pokemon must not be empty")
		}
		if c.Data.Locations == "" {
			return errors.New("data.locations must not be empty")
		}
	}

	for _, col := range c.Columns.Pokemon.Required() {
		if strings.TrimSpace(col) == "" {
			return errors.New("columns.pokemon: every required column must be named")
		}
	}
	for _, col := range c.Columns.Locations.Required() {
		if strings.TrimSpace(col) == "" {
			return errors.New("columns.locations: every required column must be named")
		}
	}

	seen := make(map[string]bool, len(c.LevelCaps))
	for _, lc := range c.LevelCaps {
		key := entities.NormalizeName(lc.Label)
		if key == "" {
			return errors.New("level_caps: label must not be empty")
		}
		if seen[key] {
			return fmt.Errorf("level_caps: duplicate label %q", lc.Label)
		}
		seen[key] = true
		if lc.Ceiling < entities.MinLevel || lc.Ceiling > entities.NoCapCeiling {
			return fmt.Errorf("level_caps: ceiling %d of %q must be between %d and %d",
				lc.Ceiling, lc.Label, entities.MinLevel, entities.NoCapCeiling)
		}
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Caps returns the configured level caps as an ordered enumeration.
func (c *Config) Caps() entities.LevelCaps {
	return entities.NewLevelCaps(c.LevelCaps)
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a dex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
