package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateEventRequest struct {
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"cover_image_url"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.CoverImageURL, is.URL),
	)
}

// UpdateEventRequest carries the mutable event fields. The slug is frozen at
// creation, so renaming never changes the public URL.
type UpdateEventRequest struct {
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"cover_image_url"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.CoverImageURL, is.URL),
	)
}
