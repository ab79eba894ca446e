package model

import (
	"time"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/genre"
)

// PageSize is the fixed page size for book listings.
const PageSize = 9

// FeaturedLimit is the default number of books returned by the featured lookup.
const FeaturedLimit = 5

// RelatedLimit caps how many related books a lookup returns.
const RelatedLimit = 6

// Book is the catalog's central document. Authors and genres are resolved
// records copied in at write time (denormalized), not live references:
// list and detail reads return them without a join, at the cost of staleness
// when an author or genre is later updated.
type Book struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Saga            *string         `json:"saga,omitempty"`
	SagaNumber      *int            `json:"sagaNumber,omitempty"`
	Description     string          `json:"description"`
	Authors         []author.Author `json:"authors"`
	Genres          []genre.Genre   `json:"genres"`
	Published       time.Time       `json:"published"`
	Rating          float64         `json:"rating"`
	Price           float64         `json:"price"`
	Discount        float64         `json:"discount"`
	DiscountedPrice *float64        `json:"discountedPrice,omitempty"`
	Cover           string          `json:"cover"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BookFilter carries the list query parameters down to the repository.
type BookFilter struct {
	GenreSlug  string
	AuthorSlug string
	Search     string
	Sort       string
	Limit      int
	Offset     int
}

// sortClauses whitelists the supported sort keys; anything else falls back
// to newest-created-first.
var sortClauses = map[string]string{
	"newest":       "created_at DESC",
	"title":        "title ASC",
	"pricehigh":    "price DESC",
	"pricelow":     "price ASC",
	"discount":     "discount DESC",
	"rating":       "rating DESC",
	"newPublished": "published DESC",
}

// SortClause maps a sort key to its ORDER BY clause.
func SortClause(sort string) string {
	if clause, ok := sortClauses[sort]; ok {
		return clause
	}
	return sortClauses["newest"]
}

// featuredFields whitelists the fields the featured lookup may sort by.
var featuredFields = map[string]bool{
	"rating":   true,
	"discount": true,
	"price":    true,
}

// FeaturedField validates a featured sort field, defaulting to rating.
func FeaturedField(field string) string {
	if featuredFields[field] {
		return field
	}
	return "rating"
}
