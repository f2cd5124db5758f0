// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

// BrowseHandler runs browse passes against the session's dataset.
type BrowseHandler struct {
	loader  *services.DatasetLoader
	service *services.BrowseService
}

// NewBrowseHandler creates a new browse handler.
func NewBrowseHandler(loader *services.DatasetLoader, service *services.BrowseService) *BrowseHandler {
	return &BrowseHandler{
		loader:  loader,
		service: service,
	}
}

// Handle filters and cross-references both tables.
func (h *BrowseHandler) Handle(ctx context.Context, criteria services.BrowseCriteria) (*services.BrowseResult, error) {
	// Reject bad input before touching the source
	if err := h.service.Validate(criteria); err != nil {
		return nil, err
	}

	ds, err := h.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	return h.service.Browse(ds, criteria)
}

// OptionsResult lists everything a UI needs to build its filter controls.
type OptionsResult struct {
	Snapshot  string                `json:"snapshot"`
	Pokemon   int                   `json:"pokemon"`
	Excluded  int                   `json:"excluded"`
	Locations int                   `json:"locations"`
	Facets    services.Facets       `json:"facets"`
	Stats     []entities.StatDomain `json:"stats"`
	Caps      []string              `json:"caps"`
}

// HandleOptions returns the filter choices present in the dataset.
func (h *BrowseHandler) HandleOptions(ctx context.Context) (*OptionsResult, error) {
	ds, err := h.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	return &OptionsResult{
		Snapshot:  ds.ID(),
		Pokemon:   len(ds.Pokemon()),
		Excluded:  ds.Excluded(),
		Locations: len(ds.Locations()),
		Facets:    ds.Facets(),
		Stats:     append([]entities.StatDomain(nil), entities.StatDomains...),
		Caps:      h.service.Caps().Labels(),
	}, nil
}

// HandleCaps returns the level cap enumeration. It does not need the dataset.
func (h *BrowseHandler) HandleCaps() entities.LevelCaps {
	return h.service.Caps()
}
