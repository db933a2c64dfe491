package api

import (
	"net/http"

	"github.com/JaimeStill/movies-api/internal/config"
	"github.com/JaimeStill/movies-api/internal/movies"
	"github.com/JaimeStill/movies-api/pkg/openapi"
	"github.com/JaimeStill/movies-api/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) []routes.Group {
	moviesHandler := movies.NewHandler(domain.Movies, runtime.Logger)

	groups := []routes.Group{
		moviesHandler.Routes(),
	}

	routes.Register(mux, cfg.API.BasePath, spec, groups...)
	return groups
}
