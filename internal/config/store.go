package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/movies-api/pkg/database"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

const EnvStoreBackend = "STORE_BACKEND"

var databaseEnv = &database.Env{
	Name:         "DATABASE_NAME",
	MaxOpenConns: "DATABASE_MAX_OPEN_CONNS",
	ConnTimeout:  "DATABASE_CONN_TIMEOUT",
	BusyTimeout:  "DATABASE_BUSY_TIMEOUT",
}

// StoreConfig selects the movie store backend. Both backends are volatile.
type StoreConfig struct {
	Backend  string          `toml:"backend"`
	Database database.Config `toml:"database"`
}

func (c *StoreConfig) Finalize() error {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	if v := os.Getenv(EnvStoreBackend); v != "" {
		c.Backend = strings.ToLower(v)
	}

	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q: must be %s or %s", c.Backend, BackendMemory, BackendSQLite)
	}

	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (c *StoreConfig) Merge(overlay *StoreConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	c.Database.Merge(&overlay.Database)
}
