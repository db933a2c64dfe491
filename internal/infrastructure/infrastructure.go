// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, database) that the
// movie store requires.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/movies-api/internal/config"
	"github.com/JaimeStill/movies-api/pkg/database"
	"github.com/JaimeStill/movies-api/pkg/lifecycle"
	"github.com/JaimeStill/movies-api/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil when the memory backend is selected.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
	}

	if cfg.Store.Backend == config.BackendSQLite {
		db, err := database.New(&cfg.Store.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start initializes the configured systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database == nil {
		return nil
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
