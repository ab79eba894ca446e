package genre

import (
	"time"

	"github.com/google/uuid"
)

// Genre represents a catalog genre. Like Author, the JSON shape doubles
// as the embedded copy stored inside a book document.
type Genre struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
