package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# dex configuration

data:
  pokemon: data/pokemon.csv
  locations: data/locations.csv
  # sqlite:
  #   path: data/dex.db   (built with 'dex import'; replaces the two files)
  exclude_forms:
    - mega

# Column names in the source tables.
columns:
  pokemon:
    number: Number
    name: Name
    type1: Type 1
    type2: Type 2
    hp: HP
    attack: Attack
    defense: Defense
    sp_attack: Sp.Attack
    sp_defense: Sp.Defense
    speed: Speed
    form: Form
  locations:
    pokemon: Pokémon
    area: Area
    method: Method
    min_level: Min Level
    max_level: Max Level

# level_caps replaces the built-in milestone list when set.
# level_caps:
#   - label: Pre Roxanne (Cap 15)
#     ceiling: 15

log:
  level: warn
  # file: .dex/dex.log   (used by 'dex tui')
`

// WriteDefault creates the .dex directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
