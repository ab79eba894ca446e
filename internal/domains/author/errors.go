package author

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound = errors.New("Author not found")
	ErrInvalidID      = errors.New("Invalid author id")
	ErrAuthorExists   = errors.New("Author already exists")
)

// ToHTTPStatus converts a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrAuthorExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
