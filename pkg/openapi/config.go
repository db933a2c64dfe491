package openapi

import "os"

// Config holds the document metadata shown in the generated spec.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Contact     string `toml:"contact"`
}

// ConfigEnv maps environment variable names for OpenAPI configuration.
type ConfigEnv struct {
	Title       string
	Description string
	Contact     string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Contact != "" {
		c.Contact = overlay.Contact
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Movies API"
	}
	if c.Description == "" {
		c.Description = "Movie API with CRUD operations"
	}
	if c.Contact == "" {
		c.Contact = "Developer"
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.Contact != "" {
		if v := os.Getenv(env.Contact); v != "" {
			c.Contact = v
		}
	}
}
