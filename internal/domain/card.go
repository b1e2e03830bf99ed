package domain

import "time"

// Card is a greeting-card snapshot saved at checkout time, one per payment.
// Read-only after creation.
type Card struct {
	ID                 uint      `json:"id"`
	PaymentID          string    `json:"payment_id"`
	HTML               string    `json:"html,omitempty"`
	Text               string    `json:"text,omitempty"`
	BackgroundImageURL string    `json:"background_image_url,omitempty"`
	OverlayImageURL    string    `json:"overlay_image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
