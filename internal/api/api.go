// Package api assembles the movie API module: the domain systems, their routes,
// the generated OpenAPI document and the module middleware stack.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/movies-api/internal/config"
	"github.com/JaimeStill/movies-api/internal/infrastructure"
	"github.com/JaimeStill/movies-api/internal/movies"
	"github.com/JaimeStill/movies-api/pkg/middleware"
	"github.com/JaimeStill/movies-api/pkg/module"
	"github.com/JaimeStill/movies-api/pkg/openapi"
	"github.com/JaimeStill/movies-api/pkg/routes"
)

// Module is the mounted API together with the document and route groups it
// was built from.
type Module struct {
	*module.Module
	Spec   *openapi.Spec
	Groups []routes.Group
}

// NewModule builds the API module. The infrastructure must already be started
// when the SQLite backend is configured.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	spec := NewSpec(cfg)

	mux := http.NewServeMux()
	groups := registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	if err := openapi.Validate(runtime.Lifecycle.Context(), specBytes); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return &Module{
		Module: m,
		Spec:   spec,
		Groups: groups,
	}, nil
}

// NewSpec creates the OpenAPI document header from configuration.
func NewSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.SetContact(cfg.API.OpenAPI.Contact)
	spec.AddServer(cfg.Domain)

	spec.Components.AddResponses(map[string]*openapi.Response{
		"NotFound": openapi.ResponseText("Movie not found", movies.ErrNotFound.Error()),
	})

	return spec
}
