package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateGenreRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(1, 100).Error("Name must be between 1 and 100 characters"),
		),
		validation.Field(&r.Image,
			validation.Required.Error("Image is required"),
			is.URL.Error("Image must be a valid URL"),
		),
	)
}

type UpdateGenreRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (r UpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("Name must not be empty"),
			validation.Length(1, 100).Error("Name must be between 1 and 100 characters"),
		),
		validation.Field(&r.Image, is.URL.Error("Image must be a valid URL")),
	)
}
