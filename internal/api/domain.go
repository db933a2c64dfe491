package api

import (
	"fmt"

	"github.com/JaimeStill/movies-api/internal/movies"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Movies movies.System
}

// NewDomain creates the movie store for the configured backend. A SQLite
// backend must be started before the schema and seed migrations can run.
func NewDomain(runtime *Runtime) (*Domain, error) {
	if runtime.Database == nil {
		return &Domain{
			Movies: movies.NewMemory(runtime.Logger),
		}, nil
	}

	if err := runtime.Database.Migrate(movies.Migrations, movies.MigrationsDir); err != nil {
		return nil, fmt.Errorf("migrate movies: %w", err)
	}

	return &Domain{
		Movies: movies.New(runtime.Database.Connection(), runtime.Logger),
	}, nil
}
