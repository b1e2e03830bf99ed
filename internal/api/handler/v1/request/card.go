package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SaveCardRequest struct {
	PaymentID          string `json:"payment_id"`
	HTML               string `json:"html"`
	Text               string `json:"text"`
	BackgroundImageURL string `json:"background_image_url"`
	OverlayImageURL    string `json:"overlay_image_url"`
}

func (req *SaveCardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentID, validation.Required),
		validation.Field(&req.BackgroundImageURL, is.URL),
		validation.Field(&req.OverlayImageURL, is.URL),
	)
}
