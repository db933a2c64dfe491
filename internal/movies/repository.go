package movies

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/movies-api/pkg/query"
	"github.com/JaimeStill/movies-api/pkg/repository"
)

// Migrations holds the schema and seed migrations for the SQLite store.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory within Migrations holding the migration files.
const MigrationsDir = "migrations"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a SQLite-backed store over a migrated database.
// Ids come from AUTOINCREMENT and are never reused.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "movies", "store", "sqlite"),
	}
}

func scanMovie(s repository.Scanner) (Movie, error) {
	var m Movie
	err := s.Scan(&m.ID, &m.Title, &m.Director, &m.Year)
	return m, err
}

func (r *repo) List(ctx context.Context) ([]Movie, error) {
	q, args := query.NewBuilder(projection, "Id").BuildList()

	movies, err := repository.QueryMany(ctx, r.db, q, args, scanMovie)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *repo) Find(ctx context.Context, id int) (*Movie, error) {
	q, args := query.NewBuilder(projection, "Id").BuildSingle("Id", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMovie)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, nil)
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, in Input) (*Movie, error) {
	const q = `
		INSERT INTO movies (title, director, year)
		VALUES ($1, $2, $3)
		RETURNING id, title, director, year`

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Movie, error) {
		return repository.QueryOne(ctx, tx, q, []any{in.Title, in.Director, in.Year}, scanMovie)
	})
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	r.logger.Info("movie created", "id", m.ID)
	return &m, nil
}

func (r *repo) Update(ctx context.Context, id int, in Input) (*Movie, error) {
	const q = `
		UPDATE movies
		SET title = $1, director = $2, year = $3
		WHERE id = $4
		RETURNING id, title, director, year`

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Movie, error) {
		return repository.QueryOne(ctx, tx, q, []any{in.Title, in.Director, in.Year, id}, scanMovie)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, nil)
	}

	r.logger.Info("movie updated", "id", id)
	return &m, nil
}

func (r *repo) Delete(ctx context.Context, id int) (*Movie, error) {
	const q = `
		DELETE FROM movies
		WHERE id = $1
		RETURNING id, title, director, year`

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Movie, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanMovie)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, nil)
	}

	r.logger.Info("movie deleted", "id", id)
	return &m, nil
}
