package author

import "context"

// Service defines author business logic. ID parameters arrive as raw
// strings from the transport layer; malformed values map to ErrInvalidID.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id string) (*Author, error)
	// FindByIDs resolves a set of raw ID strings to existing authors.
	// Malformed or unknown IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]Author, error)
	Update(ctx context.Context, id string, req *UpdateAuthorRequest) (*Author, error)
	Delete(ctx context.Context, id string) (*Author, error)
}
