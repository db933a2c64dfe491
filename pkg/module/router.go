package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment
// and falls back to natively registered routes.
type Router struct {
	mux     *http.ServeMux
	modules map[string]*Module
}

func NewRouter() *Router {
	return &Router{
		mux:     http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler for a ServeMux pattern outside any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount attaches m under its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// Modules returns the mounted modules keyed by prefix.
func (r *Router) Modules() map[string]*Module {
	return r.modules
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}
	r.mux.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.Index(trimmed, "/"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
