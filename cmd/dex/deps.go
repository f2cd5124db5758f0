package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/dexbrowse/internal/application/handlers"
	"github.com/ersonp/dexbrowse/internal/domain/ports"
	"github.com/ersonp/dexbrowse/internal/domain/services"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
	"github.com/ersonp/dexbrowse/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/dexbrowse/internal/infrastructure/tablefile"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config        *config.Config
	BrowseHandler *handlers.BrowseHandler
}

// withDeps builds the browse stack over the configured source, then calls
// the provided function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withSource(appConfig, func(source ports.DataSource) error {
		loader := services.NewDatasetLoader(source, services.ExcludeFormsContaining(appConfig.Data.ExcludeForms...), logger)
		service := services.NewBrowseService(appConfig.Caps(), logger)

		return fn(&Deps{
			Config:        appConfig,
			BrowseHandler: handlers.NewBrowseHandler(loader, service),
		})
	})
}

// withSource opens the SQLite table store when one is configured and the
// table files otherwise.
func withSource(cfg *config.Config, fn func(ports.DataSource) error) error {
	if cfg.Data.SQLite.Path != "" {
		repo, err := sqlite.NewRepository(cfg.Data.SQLite)
		if err != nil {
			return fmt.Errorf("creating sqlite repository: %w", err)
		}
		defer repo.Close()

		logger.Debug("Using sqlite table store")
		return fn(repo)
	}

	source, err := tablefile.NewSource(cfg.Data, cfg.Columns)
	if err != nil {
		return fmt.Errorf("creating table file source: %w", err)
	}

	logger.Debug("Using table files")
	return fn(source)
}

// withImportHandler reads the table files named by data and writes to the
// store at dbPath. An empty dbPath falls back to the configured store, then
// to .dex/dex.db.
func withImportHandler(data config.DataConfig, dbPath string, dryRun bool, fn func(*handlers.ImportHandler, string) error) error {
	if dbPath == "" {
		dbPath = appConfig.Data.SQLite.Path
	}
	if dbPath == "" {
		dbPath = filepath.Join(config.ConfigDir(basePath), DefaultDBFile)
	}

	source, err := tablefile.NewSource(data, appConfig.Columns)
	if err != nil {
		return fmt.Errorf("creating table file source: %w", err)
	}

	// Dry runs never touch the store, so don't create the file
	if dryRun {
		return fn(handlers.NewImportHandler(source, nil), dbPath)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: dbPath})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	return fn(handlers.NewImportHandler(source, store), dbPath)
}
