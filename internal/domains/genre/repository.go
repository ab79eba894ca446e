package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines genre data access. FindByName and FindByIDs return
// what exists without erroring on absence.
type Repository interface {
	Create(ctx context.Context, g *Genre) (*Genre, error)
	GetAll(ctx context.Context) ([]Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	FindByName(ctx context.Context, name string) (*Genre, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Genre, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, g *Genre) (*Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*Genre, error)
}
