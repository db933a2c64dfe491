// Package routes declares route groups that carry their own OpenAPI operations,
// so a single registration both mounts handlers and documents them.
package routes

import (
	"net/http"

	"github.com/JaimeStill/movies-api/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler and its documentation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds the group's schemas and operations to spec under basePath+Prefix.
// Operations without explicit tags are documented with the group tags; the
// route's own Operation is left untouched.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	prefix := basePath + g.Prefix

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 && len(g.Tags) > 0 {
			tagged := *op
			tagged.Tags = g.Tags
			op = &tagged
		}

		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}
}

// Register mounts every route of groups on mux and documents them in spec.
// Handlers are mounted relative to the module, while spec paths include basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.AddToSpec(basePath, spec)
		for _, route := range group.Routes {
			mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
		}
	}
}
