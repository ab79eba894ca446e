package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/shared/response"
)

// stubService lets each test script the service layer per operation.
type stubService struct {
	create   func(model.CreateBookRequest) (*model.Book, error)
	list     func(model.ListBooksQuery) ([]model.Book, *response.Pagination, error)
	getByID  func(string) (*model.Book, error)
	getSlug  func(string) (*model.Book, error)
	featured func(string) ([]model.Book, error)
	related  func(string) ([]model.Book, error)
	update   func(string, model.UpdateBookRequest) (*model.Book, error)
	remove   func(string) (*model.Book, error)
}

func (s *stubService) Create(_ context.Context, req model.CreateBookRequest) (*model.Book, error) {
	return s.create(req)
}

func (s *stubService) List(_ context.Context, q model.ListBooksQuery) ([]model.Book, *response.Pagination, error) {
	return s.list(q)
}

func (s *stubService) GetByID(_ context.Context, id string) (*model.Book, error) {
	return s.getByID(id)
}

func (s *stubService) GetBySlug(_ context.Context, slug string) (*model.Book, error) {
	return s.getSlug(slug)
}

func (s *stubService) Featured(_ context.Context, field string) ([]model.Book, error) {
	return s.featured(field)
}

func (s *stubService) Related(_ context.Context, slug string) ([]model.Book, error) {
	return s.related(slug)
}

func (s *stubService) Update(_ context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	return s.update(id, req)
}

func (s *stubService) Delete(_ context.Context, id string) (*model.Book, error) {
	return s.remove(id)
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	r := gin.New()
	books := r.Group("/api/v1/books")
	books.POST("", h.Create)
	books.GET("", h.List)
	books.GET("/featured", h.Featured)
	books.GET("/slug/:slug", h.GetBySlug)
	books.GET("/related/:slug", h.Related)
	books.GET("/:id", h.GetByID)
	books.PATCH("/:id", h.Update)
	books.DELETE("/:id", h.Delete)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Body) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

const validBookJSON = `{
	"title": "Dune",
	"description": "Desert planet epic",
	"authors": ["5f1c2b9e-8f7a-4f0e-9c3d-2a6b1e4d8c70"],
	"genres": ["9d8e7f6a-5b4c-4d3e-8f2a-1b0c9d8e7f6a"],
	"published": "1965-08-01T00:00:00Z",
	"rating": 4.5,
	"price": 19.99,
	"discount": 15,
	"cover": "https://covers.example.com/dune.jpg"
}`

func TestBookHandlerCreate(t *testing.T) {
	t.Run("201 with envelope on success", func(t *testing.T) {
		svc := &stubService{
			create: func(req model.CreateBookRequest) (*model.Book, error) {
				assert.Equal(t, "Dune", req.Title)
				return &model.Book{Title: req.Title, Slug: "dune"}, nil
			},
		}

		w, envelope := doRequest(t, newTestRouter(svc), http.MethodPost, "/api/v1/books", validBookJSON)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, http.StatusCreated, envelope.StatusCode)
		assert.Equal(t, "Book created successfully", envelope.Message)
		assert.NotNil(t, envelope.Data)
	})

	t.Run("400 on malformed json", func(t *testing.T) {
		svc := &stubService{}
		w, envelope := doRequest(t, newTestRouter(svc), http.MethodPost, "/api/v1/books", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, http.StatusBadRequest, envelope.StatusCode)
	})

	t.Run("400 on validation failure", func(t *testing.T) {
		svc := &stubService{}
		w, _ := doRequest(t, newTestRouter(svc), http.MethodPost, "/api/v1/books", `{"title":"Dune"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("400 on invalid author references", func(t *testing.T) {
		svc := &stubService{
			create: func(model.CreateBookRequest) (*model.Book, error) {
				return nil, model.ErrInvalidAuthorRefs
			},
		}

		w, envelope := doRequest(t, newTestRouter(svc), http.MethodPost, "/api/v1/books", validBookJSON)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "One or more authors are invalid", envelope.Message)
	})

	t.Run("500 with generic message on unexpected errors", func(t *testing.T) {
		svc := &stubService{
			create: func(model.CreateBookRequest) (*model.Book, error) {
				return nil, errors.New("connection refused")
			},
		}

		w, envelope := doRequest(t, newTestRouter(svc), http.MethodPost, "/api/v1/books", validBookJSON)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Something went wrong", envelope.Message)
		assert.NotContains(t, envelope.Message, "connection refused")
	})
}

func TestBookHandlerList(t *testing.T) {
	t.Run("200 with pagination metadata", func(t *testing.T) {
		svc := &stubService{
			list: func(q model.ListBooksQuery) ([]model.Book, *response.Pagination, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, "fantasy", q.Genre)
				assert.Equal(t, "rating", q.Sort)
				return []model.Book{}, &response.Pagination{
					Page: 2, PageSize: model.PageSize, TotalItems: 12, TotalPages: 2,
				}, nil
			},
		}

		w, envelope := doRequest(t, newTestRouter(svc),
			http.MethodGet, "/api/v1/books?page=2&genre=fantasy&sort=rating", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Books retrieved successfully", envelope.Message)
		require.NotNil(t, envelope.Pagination)
		assert.Equal(t, 2, envelope.Pagination.Page)
		assert.Equal(t, 12, envelope.Pagination.TotalItems)
	})

	t.Run("non-numeric page falls back to one", func(t *testing.T) {
		svc := &stubService{
			list: func(q model.ListBooksQuery) ([]model.Book, *response.Pagination, error) {
				assert.Equal(t, 1, q.Page)
				return nil, &response.Pagination{Page: 1, PageSize: model.PageSize}, nil
			},
		}

		w, _ := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/v1/books?page=abc", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestBookHandlerLookups(t *testing.T) {
	t.Run("404 on unknown id", func(t *testing.T) {
		svc := &stubService{
			getByID: func(string) (*model.Book, error) { return nil, model.ErrBookNotFound },
		}

		w, envelope := doRequest(t, newTestRouter(svc),
			http.MethodGet, "/api/v1/books/5f1c2b9e-8f7a-4f0e-9c3d-2a6b1e4d8c70", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", envelope.Message)
	})

	t.Run("400 on malformed id", func(t *testing.T) {
		svc := &stubService{
			getByID: func(string) (*model.Book, error) { return nil, model.ErrInvalidBookID },
		}

		w, _ := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/v1/books/nope", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("featured requests the rating field", func(t *testing.T) {
		svc := &stubService{
			featured: func(field string) ([]model.Book, error) {
				assert.Equal(t, "rating", field)
				return []model.Book{}, nil
			},
		}

		w, _ := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/v1/books/featured", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("related passes the slug through", func(t *testing.T) {
		svc := &stubService{
			related: func(slug string) ([]model.Book, error) {
				assert.Equal(t, "dune", slug)
				return []model.Book{}, nil
			},
		}

		w, _ := doRequest(t, newTestRouter(svc), http.MethodGet, "/api/v1/books/related/dune", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestBookHandlerUpdate(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		svc := &stubService{
			update: func(id string, req model.UpdateBookRequest) (*model.Book, error) {
				assert.Equal(t, "5f1c2b9e-8f7a-4f0e-9c3d-2a6b1e4d8c70", id)
				require.NotNil(t, req.Rating)
				return &model.Book{Rating: *req.Rating}, nil
			},
		}

		w, envelope := doRequest(t, newTestRouter(svc),
			http.MethodPatch, "/api/v1/books/5f1c2b9e-8f7a-4f0e-9c3d-2a6b1e4d8c70", `{"rating": 4.2}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book updated successfully", envelope.Message)
	})

	t.Run("400 on out-of-range rating", func(t *testing.T) {
		svc := &stubService{}
		w, _ := doRequest(t, newTestRouter(svc),
			http.MethodPatch, "/api/v1/books/5f1c2b9e-8f7a-4f0e-9c3d-2a6b1e4d8c70", `{"rating": 9}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandlerDelete(t *testing.T) {
	svc := &stubService{
		remove: func(id string) (*model.Book, error) {
			return &model.Book{Title: "Dune"}, nil
		},
	}

	w, envelope := doRequest(t, newTestRouter(svc),
		http.MethodDelete, "/api/v1/books/5f1c2b9e-8f7a-4f0e-9c3d-2a6b1e4d8c70", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book deleted successfully", envelope.Message)
}
