package genre

import "context"

// Service defines genre business logic; ID parameters arrive as raw strings.
type Service interface {
	Create(ctx context.Context, req *CreateGenreRequest) (*Genre, error)
	GetAll(ctx context.Context) ([]Genre, error)
	GetByID(ctx context.Context, id string) (*Genre, error)
	FindByIDs(ctx context.Context, ids []string) ([]Genre, error)
	Update(ctx context.Context, id string, req *UpdateGenreRequest) (*Genre, error)
	Delete(ctx context.Context, id string) (*Genre, error)
}
