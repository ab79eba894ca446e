package service

import (
	"context"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared/response"
)

// AuthorResolver is the slice of the author service the book pipeline needs
// for reference validation. author.Service satisfies it.
type AuthorResolver interface {
	FindByIDs(ctx context.Context, ids []string) ([]author.Author, error)
}

// GenreResolver is the genre-side counterpart; genre.Service satisfies it.
type GenreResolver interface {
	FindByIDs(ctx context.Context, ids []string) ([]genre.Genre, error)
}

// Service defines the book pipeline operations.
type Service interface {
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	List(ctx context.Context, q model.ListBooksQuery) ([]model.Book, *response.Pagination, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	GetBySlug(ctx context.Context, slug string) (*model.Book, error)
	Featured(ctx context.Context, field string) ([]model.Book, error)
	Related(ctx context.Context, slug string) ([]model.Book, error)
	Update(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id string) (*model.Book, error)
}
