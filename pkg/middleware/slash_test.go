package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/movies-api/pkg/middleware"
)

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"root preserved", http.MethodGet, "/", http.StatusOK, ""},
		{"no slash passes", http.MethodGet, "/movies", http.StatusOK, ""},
		{"get redirects", http.MethodGet, "/movies/", http.StatusMovedPermanently, "/movies"},
		{"query preserved", http.MethodGet, "/movies/?a=1", http.StatusMovedPermanently, "/movies?a=1"},
		{"post keeps method", http.MethodPost, "/movies/", http.StatusPermanentRedirect, "/movies"},
	}

	t.Run("stripped prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/movies/?a=1", nil)
		req.URL.Path = "/movies/"
		w := httptest.NewRecorder()

		middleware.TrimSlash()(okHandler()).ServeHTTP(w, req)

		if got := w.Header().Get("Location"); got != "/api/movies?a=1" {
			t.Errorf("Location = %q, want %q", got, "/api/movies?a=1")
		}
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			middleware.TrimSlash()(okHandler()).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
