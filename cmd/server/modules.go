package main

import (
	"net/http"

	"github.com/JaimeStill/movies-api/internal/api"
	"github.com/JaimeStill/movies-api/internal/config"
	"github.com/JaimeStill/movies-api/internal/infrastructure"
	"github.com/JaimeStill/movies-api/pkg/lifecycle"
	"github.com/JaimeStill/movies-api/pkg/module"
	"github.com/JaimeStill/movies-api/pkg/routes"
	"github.com/JaimeStill/movies-api/web/docs"
)

const docsPrefix = "/api-docs"

type Modules struct {
	API  *api.Module
	Docs *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	docsModule, err := docs.NewModule(docsPrefix, apiModule.Spec, infra.Logger)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API.Module)
	router.Mount(m.Docs)
}

// Routes lists every endpoint the server exposes, documented or not.
func (m *Modules) Routes(cfg *config.Config) []routes.Entry {
	entries := routes.Table(cfg.API.BasePath, m.API.Groups...)
	return append(entries,
		routes.Entry{Method: "GET", Path: cfg.API.BasePath + "/openapi.json", Summary: "OpenAPI document"},
		routes.Entry{Method: "GET", Path: docsPrefix, Summary: "Interactive API reference"},
		routes.Entry{Method: "GET", Path: docsPrefix + "/openapi.json", Summary: "OpenAPI document (JSON)"},
		routes.Entry{Method: "GET", Path: docsPrefix + "/openapi.yaml", Summary: "OpenAPI document (YAML)"},
		routes.Entry{Method: "GET", Path: "/healthz", Summary: "Liveness probe"},
		routes.Entry{Method: "GET", Path: "/readyz", Summary: "Readiness probe"},
	)
}

func buildRouter(ready lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
