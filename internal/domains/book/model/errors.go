package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/logger"
)

var (
	ErrBookExists        = errors.New("Book already exists")
	ErrBookNotFound      = errors.New("Book not found")
	ErrInvalidBookID     = errors.New("Invalid book id")
	ErrInvalidAuthorRefs = errors.New("One or more authors are invalid")
	ErrInvalidGenreRefs  = errors.New("One or more genres are invalid")
)

var bookErrorStatus = map[error]int{
	ErrBookExists:        http.StatusBadRequest,
	ErrBookNotFound:      http.StatusNotFound,
	ErrInvalidBookID:     http.StatusBadRequest,
	ErrInvalidAuthorRefs: http.StatusBadRequest,
	ErrInvalidGenreRefs:  http.StatusBadRequest,
}

// HandleBookError writes the mapped error response and reports whether err
// was handled. Unmapped errors surface as a generic 500 so persistence
// faults never leak to the caller.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, status := range bookErrorStatus {
		if errors.Is(err, known) {
			response.Error(c, status, known.Error())
			return true
		}
	}

	logger.Error("book handler error", err)
	response.InternalServerError(c)
	return true
}
