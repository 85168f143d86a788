package handlers

import (
	"context"
	"log/slog"

	"github.com/rankandrent/Packaginghippo-sub002/internal/config"
	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
)

// Pinger reports database reachability.
type Pinger interface {
	Health(ctx context.Context) error
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config  *config.Config
	catalog diag.Catalog
	db      Pinger
	logger  *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, catalog diag.Catalog, db Pinger, logger *slog.Logger) *Handlers {
	return &Handlers{
		config:  cfg,
		catalog: catalog,
		db:      db,
		logger:  logger,
	}
}
