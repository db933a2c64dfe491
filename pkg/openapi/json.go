package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// MarshalJSON renders the spec as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON renders the spec as JSON and writes it to path.
func WriteJSON(spec *Spec, path string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write spec: %w", err)
	}
	return nil
}

// ServeSpec returns a handler serving pre-rendered spec bytes as JSON.
func ServeSpec(spec []byte) http.HandlerFunc {
	return serveBytes("application/json; charset=utf-8", spec)
}

// ServeYAML returns a handler serving pre-rendered spec bytes as YAML.
func ServeYAML(spec []byte) http.HandlerFunc {
	return serveBytes("application/yaml; charset=utf-8", spec)
}

func serveBytes(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
