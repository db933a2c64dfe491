package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contains configuration for the volatile SQLite database.
// The database lives in memory and is discarded when the last connection closes.
type Config struct {
	Name         string `toml:"name"`
	MaxOpenConns int    `toml:"max_open_conns"`
	ConnTimeout  string `toml:"conn_timeout"`
	BusyTimeout  string `toml:"busy_timeout"`
}

// Env maps environment variable names for database configuration.
type Env struct {
	Name         string
	MaxOpenConns string
	ConnTimeout  string
	BusyTimeout  string
}

// ConnTimeoutDuration parses and returns the connection timeout as a time.Duration.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// BusyTimeoutDuration parses and returns the SQLite busy timeout as a time.Duration.
func (c *Config) BusyTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.BusyTimeout)
	return d
}

// Dsn returns the shared-cache in-memory connection string for name.
func (c *Config) Dsn(name string) string {
	return fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_busy_timeout=%d",
		name, c.BusyTimeoutDuration().Milliseconds(),
	)
}

// Finalize applies defaults, loads environment overrides, and validates the database configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.MaxOpenConns != 0 {
		c.MaxOpenConns = overlay.MaxOpenConns
	}
	if overlay.ConnTimeout != "" {
		c.ConnTimeout = overlay.ConnTimeout
	}
	if overlay.BusyTimeout != "" {
		c.BusyTimeout = overlay.BusyTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 1
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
	if c.BusyTimeout == "" {
		c.BusyTimeout = "5s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Name != "" {
		if v := os.Getenv(env.Name); v != "" {
			c.Name = v
		}
	}
	if env.MaxOpenConns != "" {
		if v := os.Getenv(env.MaxOpenConns); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxOpenConns = n
			}
		}
	}
	if env.ConnTimeout != "" {
		if v := os.Getenv(env.ConnTimeout); v != "" {
			c.ConnTimeout = v
		}
	}
	if env.BusyTimeout != "" {
		if v := os.Getenv(env.BusyTimeout); v != "" {
			c.BusyTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max_open_conns must be at least 1")
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.BusyTimeout); err != nil {
		return fmt.Errorf("invalid busy_timeout: %w", err)
	}
	return nil
}
