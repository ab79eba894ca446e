package author

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a catalog author. The JSON shape doubles as the embedded
// copy stored inside a book document, so the tags are part of the contract.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
