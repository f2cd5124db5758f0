// Package sqlite provides a SQLite table store implementing ports.TableStore.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
	"github.com/ersonp/dexbrowse/internal/infrastructure/parsers"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.TableStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Pokémon table, one row per source row (row_id keeps source order)
	CREATE TABLE IF NOT EXISTS pokemon (
		row_id INTEGER PRIMARY KEY AUTOINCREMENT,
		number INTEGER NOT NULL,
		name TEXT NOT NULL,
		type1 TEXT NOT NULL,
		type2 TEXT NOT NULL DEFAULT '',
		hp INTEGER NOT NULL,
		attack INTEGER NOT NULL,
		defense INTEGER NOT NULL,
		sp_attack INTEGER NOT NULL,
		sp_defense INTEGER NOT NULL,
		speed INTEGER NOT NULL,
		form TEXT NOT NULL DEFAULT ''
	);

	-- Encounter locations
	CREATE TABLE IF NOT EXISTS locations (
		row_id INTEGER PRIMARY KEY AUTOINCREMENT,
		pokemon TEXT NOT NULL,
		area TEXT NOT NULL,
		method TEXT NOT NULL,
		min_level INTEGER NOT NULL,
		max_level INTEGER NOT NULL
	);

	-- Import log (one row per compiled snapshot)
	CREATE TABLE IF NOT EXISTS imports (
		id TEXT PRIMARY KEY,
		pokemon_rows INTEGER NOT NULL,
		location_rows INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_imports_created ON imports(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// ReplaceTables replaces both tables in a single transaction and records the import.
func (r *Repository) ReplaceTables(ctx context.Context, pokemon []entities.Pokemon, locations []entities.Location) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM pokemon`); err != nil {
		return fmt.Errorf("clearing pokemon: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM locations`); err != nil {
		return fmt.Errorf("clearing locations: %w", err)
	}

	if err = insertPokemon(ctx, tx, pokemon); err != nil {
		return err
	}
	if err = insertLocations(ctx, tx, locations); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO imports (id, pokemon_rows, location_rows, created_at) VALUES (?, ?, ?, ?)`,
		generateUUID(), len(pokemon), len(locations), timeNow(),
	)
	if err != nil {
		return fmt.Errorf("logging import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing tables: %w", err)
	}
	return nil
}

func insertPokemon(ctx context.Context, tx *sql.Tx, pokemon []entities.Pokemon) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pokemon (number, name, type1, type2, hp, attack, defense, sp_attack, sp_defense, speed, form)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing pokemon insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pokemon {
		if _, err := stmt.ExecContext(ctx,
			p.Number, p.Name, p.Type1, p.Type2,
			p.Stats.HP, p.Stats.Attack, p.Stats.Defense,
			p.Stats.SpAttack, p.Stats.SpDefense, p.Stats.Speed,
			p.Form,
		); err != nil {
			return fmt.Errorf("inserting pokemon %q: %w", p.Name, err)
		}
	}
	return nil
}

func insertLocations(ctx context.Context, tx *sql.Tx, locations []entities.Location) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (pokemon, area, method, min_level, max_level)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing location insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range locations {
		if _, err := stmt.ExecContext(ctx, l.PokemonName, l.Area, l.Method, l.MinLevel, l.MaxLevel); err != nil {
			return fmt.Errorf("inserting location %q/%q: %w", l.Area, l.PokemonName, err)
		}
	}
	return nil
}

// LoadPokemon reads every Pokémon row in source order.
func (r *Repository) LoadPokemon(ctx context.Context) ([]entities.Pokemon, error) {
	query := `
		SELECT number, name, type1, type2, hp, attack, defense, sp_attack, sp_defense, speed, form
		FROM pokemon
		ORDER BY row_id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &entities.LoadError{Table: parsers.TablePokemon, Err: fmt.Errorf("querying pokemon: %w", err)}
	}
	defer rows.Close()

	var result []entities.Pokemon
	for rows.Next() {
		var p entities.Pokemon
		if err := rows.Scan(
			&p.Number,
			&p.Name,
			&p.Type1,
			&p.Type2,
			&p.Stats.HP,
			&p.Stats.Attack,
			&p.Stats.Defense,
			&p.Stats.SpAttack,
			&p.Stats.SpDefense,
			&p.Stats.Speed,
			&p.Form,
		); err != nil {
			return nil, &entities.LoadError{Table: parsers.TablePokemon, Err: fmt.Errorf("scanning pokemon: %w", err)}
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &entities.LoadError{Table: parsers.TablePokemon, Err: err}
	}
	return result, nil
}

// LoadLocations reads every location row in source order.
func (r *Repository) LoadLocations(ctx context.Context) ([]entities.Location, error) {
	query := `
		SELECT pokemon, area, method, min_level, max_level
		FROM locations
		ORDER BY row_id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &entities.LoadError{Table: parsers.TableLocations, Err: fmt.Errorf("querying locations: %w", err)}
	}
	defer rows.Close()

	var result []entities.Location
	for rows.Next() {
		var l entities.Location
		if err := rows.Scan(&l.PokemonName, &l.Area, &l.Method, &l.MinLevel, &l.MaxLevel); err != nil {
			return nil, &entities.LoadError{Table: parsers.TableLocations, Err: fmt.Errorf("scanning location: %w", err)}
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, &entities.LoadError{Table: parsers.TableLocations, Err: err}
	}
	return result, nil
}

// LatestImport returns the most recent import record, or nil if the tables
// were never imported.
func (r *Repository) LatestImport(ctx context.Context) (*entities.ImportRecord, error) {
	query := `
		SELECT id, pokemon_rows, location_rows, created_at
		FROM imports
		ORDER BY created_at DESC
		LIMIT 1
	`
	var rec entities.ImportRecord
	err := r.db.QueryRowContext(ctx, query).Scan(&rec.ID, &rec.PokemonRows, &rec.LocationRows, &rec.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning import: %w", err)
	}
	return &rec, nil
}
