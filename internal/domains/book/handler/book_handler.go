package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", created)
}

// List handles GET /books?page=&genre=&author=&search=&sort=
func (h *BookHandler) List(c *gin.Context) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	q := model.ListBooksQuery{
		Page:   page,
		Genre:  c.Query("genre"),
		Author: c.Query("author"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	books, pagination, err := h.service.List(c.Request.Context(), q)
	if model.HandleBookError(c, err) {
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Books retrieved successfully", books, pagination)
}

// Featured handles GET /books/featured
func (h *BookHandler) Featured(c *gin.Context) {
	books, err := h.service.Featured(c.Request.Context(), "rating")
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// GetByID handles GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", b)
}

// GetBySlug handles GET /books/slug/:slug
func (h *BookHandler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", b)
}

// Related handles GET /books/related/:slug
func (h *BookHandler) Related(c *gin.Context) {
	books, err := h.service.Related(c.Request.Context(), c.Param("slug"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// Update handles PATCH /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", updated)
}

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	removed, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", removed)
}
