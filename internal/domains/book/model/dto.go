package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateBookRequest is the POST /books payload. Authors and genres arrive
// as ID strings and are resolved to full records by the create pipeline.
type CreateBookRequest struct {
	Title       string    `json:"title"`
	Saga        *string   `json:"saga"`
	SagaNumber  *int      `json:"sagaNumber"`
	Description string    `json:"description"`
	Authors     []string  `json:"authors"`
	Genres      []string  `json:"genres"`
	Published   time.Time `json:"published"`
	Rating      float64   `json:"rating"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	Cover       string    `json:"cover"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title is required"),
			validation.Length(1, 500).Error("Title must be between 1 and 500 characters"),
		),
		validation.Field(&r.Description, validation.Required.Error("Description is required")),
		validation.Field(&r.Authors,
			validation.Required.Error("Authors are required"),
			validation.Each(is.UUID.Error("Author id must be a valid UUID")),
		),
		validation.Field(&r.Genres,
			validation.Required.Error("Genres are required"),
			validation.Each(is.UUID.Error("Genre id must be a valid UUID")),
		),
		validation.Field(&r.Published, validation.Required.Error("Published date is required")),
		validation.Field(&r.Rating,
			validation.Min(0.0).Error("Rating must not be negative"),
			validation.Max(5.0).Error("Rating must not exceed 5"),
		),
		validation.Field(&r.Price,
			validation.Required.Error("Price is required"),
			validation.Min(0.0).Exclusive().Error("Price must be positive"),
		),
		validation.Field(&r.Discount,
			validation.Min(0.0).Error("Discount must not be negative"),
			validation.Max(100.0).Error("Discount must not exceed 100"),
		),
		validation.Field(&r.Cover,
			validation.Required.Error("Cover is required"),
			is.URL.Error("Cover must be a valid URL"),
		),
	)
}

// UpdateBookRequest is the PATCH /books/:id payload; only present fields
// are merged into the stored record.
type UpdateBookRequest struct {
	Title       *string    `json:"title"`
	Saga        *string    `json:"saga"`
	SagaNumber  *int       `json:"sagaNumber"`
	Description *string    `json:"description"`
	Authors     []string   `json:"authors"`
	Genres      []string   `json:"genres"`
	Published   *time.Time `json:"published"`
	Rating      *float64   `json:"rating"`
	Price       *float64   `json:"price"`
	Discount    *float64   `json:"discount"`
	Cover       *string    `json:"cover"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("Title must not be empty"),
			validation.Length(1, 500).Error("Title must be between 1 and 500 characters"),
		),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("Description must not be empty")),
		validation.Field(&r.Authors, validation.Each(is.UUID.Error("Author id must be a valid UUID"))),
		validation.Field(&r.Genres, validation.Each(is.UUID.Error("Genre id must be a valid UUID"))),
		validation.Field(&r.Rating,
			validation.Min(0.0).Error("Rating must not be negative"),
			validation.Max(5.0).Error("Rating must not exceed 5"),
		),
		validation.Field(&r.Price, validation.Min(0.0).Exclusive().Error("Price must be positive")),
		validation.Field(&r.Discount,
			validation.Min(0.0).Error("Discount must not be negative"),
			validation.Max(100.0).Error("Discount must not exceed 100"),
		),
		validation.Field(&r.Cover, is.URL.Error("Cover must be a valid URL")),
	)
}

// ListBooksQuery holds the GET /books query parameters.
type ListBooksQuery struct {
	Page   int
	Genre  string
	Author string
	Search string
	Sort   string
}
