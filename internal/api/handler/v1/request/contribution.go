package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CardPayload is an optional greeting card captured at checkout, keyed to
// the payment once the intent exists.
type CardPayload struct {
	HTML               string `json:"html"`
	Text               string `json:"text"`
	BackgroundImageURL string `json:"background_image_url"`
	OverlayImageURL    string `json:"overlay_image_url"`
}

type CreateIntentRequest struct {
	WishID     uint         `json:"wish_id"`
	Amount     float64      `json:"amount"`
	SenderName string       `json:"sender_name"`
	Card       *CardPayload `json:"card"`
}

func (req *CreateIntentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.WishID, validation.Required),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.5)),
		validation.Field(&req.SenderName, validation.Required, validation.Length(1, 100)),
	)
}
