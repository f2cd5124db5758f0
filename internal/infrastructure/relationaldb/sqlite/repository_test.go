package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func samplePokemon() []entities.Pokemon {
	return []entities.Pokemon{
		{Number: 1, Name: "Bulbasaur", Type1: "Grass", Type2: "Poison",
			Stats: entities.Stats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}},
		{Number: 6, Name: "Charizard", Type1: "Fire", Type2: "Dragon", Form: "Mega X",
			Stats: entities.Stats{HP: 78, Attack: 130, Defense: 111, SpAttack: 130, SpDefense: 85, Speed: 100}},
	}
}

func sampleLocations() []entities.Location {
	return []entities.Location{
		{PokemonName: "bulbasaur ", Area: "Route 101", Method: "Grass", MinLevel: 2, MaxLevel: 4},
		{PokemonName: "Wingull", Area: "Route 104", Method: "Surfing", MinLevel: 10, MaxLevel: 20},
	}
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	tables := []string{"pokemon", "locations", "imports"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_ReplaceAndLoad(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTables(ctx, samplePokemon(), sampleLocations()))

	pokemon, err := repo.LoadPokemon(ctx)
	require.NoError(t, err)
	assert.Equal(t, samplePokemon(), pokemon)

	locations, err := repo.LoadLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleLocations(), locations, "padding is stored as-is")
}

func TestRepository_ReplaceTables_Replaces(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTables(ctx, samplePokemon(), sampleLocations()))
	require.NoError(t, repo.ReplaceTables(ctx, samplePokemon()[:1], nil))

	pokemon, err := repo.LoadPokemon(ctx)
	require.NoError(t, err)
	assert.Len(t, pokemon, 1)

	locations, err := repo.LoadLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestRepository_LatestImport(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	rec, err := repo.LatestImport(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = time.Now })

	require.NoError(t, repo.ReplaceTables(ctx, samplePokemon(), sampleLocations()))

	rec, err = repo.LatestImport(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 2, rec.PokemonRows)
	assert.Equal(t, 2, rec.LocationRows)
	assert.True(t, fixed.Equal(rec.ImportedAt))
}

func TestRepository_LoadWithoutSchema(t *testing.T) {
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.LoadPokemon(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrLoad))
}

func TestRepository_FileDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file database test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "dex.db")
	ctx := context.Background()

	repo, err := NewRepository(config.SQLiteConfig{Path: dbPath})
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.ReplaceTables(ctx, samplePokemon(), sampleLocations()))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(config.SQLiteConfig{Path: dbPath})
	require.NoError(t, err)
	defer reopened.Close()

	pokemon, err := reopened.LoadPokemon(ctx)
	require.NoError(t, err)
	assert.Len(t, pokemon, 2)
}
