package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/book/model"
)

// Repository defines book data access. FindByTitle returns nil without
// error when no book matches, mirroring the duplicate-check contract of
// the author and genre repositories.
type Repository interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	GetBySlug(ctx context.Context, slug string) (*model.Book, error)
	FindByTitle(ctx context.Context, title string) (*model.Book, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Featured(ctx context.Context, field string, limit int) ([]model.Book, error)
	Related(ctx context.Context, b *model.Book, limit int) ([]model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Book, error)
}
