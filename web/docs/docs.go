// Package docs serves the interactive API reference using the Scalar UI,
// together with JSON and YAML renderings of the OpenAPI document.
package docs

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/movies-api/pkg/middleware"
	"github.com/JaimeStill/movies-api/pkg/module"
	"github.com/JaimeStill/movies-api/pkg/openapi"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type page struct {
	Title   string
	SpecURL string
}

// NewModule creates the documentation module mounted at prefix. The document
// is rendered once; later changes to spec are not reflected.
func NewModule(prefix string, spec *openapi.Spec, logger *slog.Logger) (*module.Module, error) {
	specJSON, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi json: %w", err)
	}

	specYAML, err := openapi.MarshalYAML(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi yaml: %w", err)
	}

	var index bytes.Buffer
	err = indexTmpl.Execute(&index, page{
		Title:   spec.Info.Title,
		SpecURL: prefix + "/openapi.json",
	})
	if err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", serveIndex(index.Bytes()))
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specJSON))
	mux.HandleFunc("GET /openapi.yaml", openapi.ServeYAML(specYAML))

	m := module.New(prefix, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.Logger(logger.With("module", "docs")))

	return m, nil
}

func serveIndex(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
