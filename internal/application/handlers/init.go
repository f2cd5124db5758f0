package handlers

import (
	"fmt"

	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

// InitHandler writes a default configuration.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	Pokemon    string
	Locations  string
}

// Handle writes .dex/config.yaml under basePath. It refuses to overwrite an
// existing config.
func (h *InitHandler) Handle(basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("dex already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		Pokemon:    cfg.Data.Pokemon,
		Locations:  cfg.Data.Locations,
	}, nil
}
