// Package database manages a volatile, shared-cache in-memory SQLite database.
// Schema and seed data are applied through embedded golang-migrate migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/JaimeStill/movies-api/pkg/lifecycle"
)

// ErrNotReady indicates the database was used before Start completed.
var ErrNotReady = errors.New("database not ready")

// System owns the connection pool and its lifecycle.
type System interface {
	// Connection returns the underlying pool.
	Connection() *sql.DB

	// Start verifies connectivity and registers the pool for shutdown.
	Start(lc *lifecycle.Coordinator) error

	// Migrate applies every up migration found in dir of migrations.
	// Returns ErrNotReady if called before Start.
	Migrate(migrations fs.FS, dir string) error
}

type database struct {
	conn        *sql.DB
	name        string
	logger      *slog.Logger
	connTimeout time.Duration
	started     atomic.Bool
}

// New opens a fresh in-memory database. When cfg.Name is empty a unique name
// is generated so independent systems never share data.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	name := cfg.Name
	if name == "" {
		name = uuid.NewString()
	}

	db, err := sql.Open("sqlite3", cfg.Dsn(name))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// the in-memory database is dropped when its last connection closes
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	return &database{
		conn:        db,
		name:        name,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection", "name", d.name)

	pingCtx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
	defer cancel()

	if err := d.conn.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.started.Store(true)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	d.logger.Info("database connection established")
	return nil
}

func (d *database) Migrate(migrations fs.FS, dir string) error {
	if !d.started.Load() {
		return ErrNotReady
	}

	src, err := iofs.New(migrations, dir)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(d.conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	// m.Close is not called: it would close the shared pool through the driver.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}

	d.logger.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}
