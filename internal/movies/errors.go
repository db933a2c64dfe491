package movies

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned when no movie matches the requested id.
// Its message is the plain-text 404 body clients match on.
var ErrNotFound = errors.New("Movie not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
