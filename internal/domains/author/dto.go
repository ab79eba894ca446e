package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateAuthorRequest struct {
	Name string `json:"name"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(1, 200).Error("Name must be between 1 and 200 characters"),
		),
	)
}

type UpdateAuthorRequest struct {
	Name *string `json:"name"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("Name must not be empty"),
			validation.Length(1, 200).Error("Name must be between 1 and 200 characters"),
		),
	)
}
