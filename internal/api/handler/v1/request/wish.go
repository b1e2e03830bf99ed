package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateWishRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
}

func (req *CreateWishRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&req.Currency, validation.Required, is.CurrencyCode),
		validation.Field(&req.ImageURL, is.URL),
	)
}

// UpdateWishRequest omits price and currency; the USD goal is frozen at
// creation.
type UpdateWishRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (req *UpdateWishRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.ImageURL, is.URL),
	)
}
