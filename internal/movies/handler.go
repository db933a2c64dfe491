package movies

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/JaimeStill/movies-api/pkg/handlers"
	"github.com/JaimeStill/movies-api/pkg/routes"
)

// Handler provides HTTP handlers for the movie collection.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new movies HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for movie endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/movies",
		Tags:        []string{"Movies"},
		Description: "Movie collection CRUD",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

// List handles GET /movies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /movies/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /movies.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.input(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update handles PUT /movies/{id}. A missing movie is reported before the
// body is read.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	if _, err := h.sys.Find(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	in, ok := h.input(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /movies/{id}. The removed record is returned wrapped
// in a one-element array.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	removed, err := h.sys.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, []*Movie{removed})
}

// id reads the leading integer of the path id. Leading whitespace is skipped
// and the longest run of an optional sign followed by digits is used, so
// "2abc" and "1.5" address movies 2 and 1. A value without leading digits
// matches no movie.
func (h *Handler) id(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		handlers.RespondText(w, h.logger, http.StatusNotFound, ErrNotFound)
		return 0, false
	}
	return id, true
}

func parseID(raw string) (int, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("parse id %q: no digits", raw)
	}

	return strconv.Atoi(s[:end])
}

// input decodes the request body. Bodies that are empty or not declared as
// JSON decode to an Input with every field absent.
func (h *Handler) input(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var in Input
	if !isJSON(r.Header.Get("Content-Type")) {
		return in, true
	}

	err := json.NewDecoder(r.Body).Decode(&in)
	if err == nil || errors.Is(err, io.EOF) {
		return in, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
		return in, false
	}

	handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("decode movie: %w", err))
	return in, false
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := MapHTTPStatus(err)
	if status == http.StatusNotFound {
		handlers.RespondText(w, h.logger, status, ErrNotFound)
		return
	}
	handlers.RespondError(w, h.logger, status, err)
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
