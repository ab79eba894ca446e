package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines author data access. Lookup methods that feed
// duplicate checks (FindByName) and reference resolution (FindByIDs)
// return what exists without erroring on absence.
type Repository interface {
	Create(ctx context.Context, a *Author) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	FindByName(ctx context.Context, name string) (*Author, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Author, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, a *Author) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) (*Author, error)
}
