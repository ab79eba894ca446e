package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/logger"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

func (h *GenreHandler) handleServiceError(c *gin.Context, err error) {
	status := genre.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("genre handler error", err)
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}

// Create handles POST /genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Genre created successfully", created)
}

// GetAll handles GET /genres
func (h *GenreHandler) GetAll(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Genres retrieved successfully", genres)
}

// GetByID handles GET /genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	g, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Genre retrieved successfully", g)
}

// Update handles PATCH /genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	var req genre.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Genre updated successfully", updated)
}

// Delete handles DELETE /genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	removed, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Genre deleted successfully", removed)
}
