package genre

import (
	"errors"
	"net/http"
)

var (
	ErrGenreNotFound = errors.New("Genre not found")
	ErrInvalidID     = errors.New("Invalid genre id")
	ErrGenreExists   = errors.New("Genre already exists")
)

// ToHTTPStatus converts a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrGenreExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
