package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/ports"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Dataset is an immutable snapshot of both tables. Filters read from it and
// never modify it; accessors hand out copies.
type Dataset struct {
	id        string
	loadedAt  time.Time
	pokemon   []entities.Pokemon
	locations []entities.Location
	excluded  int
}

// NewDataset builds a snapshot from raw rows, deriving each Pokémon's
// generation from its number.
func NewDataset(pokemon []entities.Pokemon, locations []entities.Location) *Dataset {
	ps := make([]entities.Pokemon, len(pokemon))
	for i, p := range pokemon {
		p.Generation = entities.GenerationOf(p.Number)
		ps[i] = p
	}

	return &Dataset{
		id:        uuid.New().String(),
		loadedAt:  timeNow(),
		pokemon:   ps,
		locations: append([]entities.Location(nil), locations...),
	}
}

// ID identifies the snapshot in logs and exports.
func (d *Dataset) ID() string { return d.id }

// LoadedAt returns when the snapshot was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Excluded returns how many Pokémon rows the exclusion rule dropped.
func (d *Dataset) Excluded() int { return d.excluded }

// Pokemon returns a copy of the Pokémon rows.
func (d *Dataset) Pokemon() []entities.Pokemon {
	return append([]entities.Pokemon(nil), d.pokemon...)
}

// Locations returns a copy of the location rows.
func (d *Dataset) Locations() []entities.Location {
	return append([]entities.Location(nil), d.locations...)
}

// Facets lists the distinct values a UI offers for each filter.
type Facets struct {
	Names       []string `json:"names"`
	Type1       []string `json:"type1"`
	Type2       []string `json:"type2"`
	Generations []int    `json:"generations"`
	Areas       []string `json:"areas"`
	Methods     []string `json:"methods"`
}

// Facets returns the sorted distinct filter values present in the snapshot.
// Values are trimmed; blanks are skipped.
func (d *Dataset) Facets() Facets {
	names := newValueSet()
	type1 := newValueSet()
	type2 := newValueSet()
	gens := make(map[int]struct{})
	for _, p := range d.pokemon {
		names.add(p.Name)
		type1.add(p.Type1)
		type2.add(p.Type2)
		gens[p.Generation] = struct{}{}
	}

	areas := newValueSet()
	methods := newValueSet()
	for _, l := range d.locations {
		areas.add(l.Area)
		methods.add(l.Method)
	}

	generations := make([]int, 0, len(gens))
	for g := range gens {
		generations = append(generations, g)
	}
	sort.Ints(generations)

	return Facets{
		Names:       names.sorted(),
		Type1:       type1.sorted(),
		Type2:       type2.sorted(),
		Generations: generations,
		Areas:       areas.sorted(),
		Methods:     methods.sorted(),
	}
}

// valueSet collects display values, keeping the first spelling seen for each
// normalized key.
type valueSet map[string]string

func newValueSet() valueSet { return make(valueSet) }

func (s valueSet) add(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	key := entities.NormalizeName(v)
	if _, ok := s[key]; !ok {
		s[key] = v
	}
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ExcludeFormsContaining returns a rule that drops Pokémon whose form label
// contains any of the patterns, ignoring case. With no patterns it returns nil.
func ExcludeFormsContaining(patterns ...string) func(entities.Pokemon) bool {
	var needles []string
	for _, p := range patterns {
		if n := entities.NormalizeName(p); n != "" {
			needles = append(needles, n)
		}
	}
	if len(needles) == 0 {
		return nil
	}

	return func(p entities.Pokemon) bool {
		form := strings.ToLower(p.Form)
		for _, n := range needles {
			if strings.Contains(form, n) {
				return true
			}
		}
		return false
	}
}

// DatasetLoader reads the source tables once and hands out the same snapshot
// on every later call.
type DatasetLoader struct {
	source  ports.DataSource
	exclude func(entities.Pokemon) bool
	logger  *zap.Logger

	once    sync.Once
	dataset *Dataset
	err     error
}

// NewDatasetLoader creates a loader. exclude may be nil to keep every row.
func NewDatasetLoader(source ports.DataSource, exclude func(entities.Pokemon) bool, logger *zap.Logger) *DatasetLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetLoader{
		source:  source,
		exclude: exclude,
		logger:  logger,
	}
}

// Load returns the snapshot, reading the source on the first call only.
// A failed load is remembered too: the session cannot continue without data.
func (l *DatasetLoader) Load(ctx context.Context) (*Dataset, error) {
	l.once.Do(func() {
		l.dataset, l.err = l.load(ctx)
	})
	return l.dataset, l.err
}

func (l *DatasetLoader) load(ctx context.Context) (*Dataset, error) {
	start := timeNow()

	pokemon, err := l.source.LoadPokemon(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pokemon table: %w", err)
	}

	locations, err := l.source.LoadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading location table: %w", err)
	}

	kept := pokemon
	if l.exclude != nil {
		kept = make([]entities.Pokemon, 0, len(pokemon))
		for _, p := range pokemon {
			if !l.exclude(p) {
				kept = append(kept, p)
			}
		}
	}

	ds := NewDataset(kept, locations)
	ds.excluded = len(pokemon) - len(kept)

	l.logger.Info("Dataset loaded",
		zap.String("snapshot", ds.id),
		zap.Int("pokemon", len(ds.pokemon)),
		zap.Int("excluded", ds.excluded),
		zap.Int("locations", len(ds.locations)),
		zap.Duration("elapsed", timeNow().Sub(start)))

	return ds, nil
}
