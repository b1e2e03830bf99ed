package domain

import "time"

// Wish is a single desired item with a funding goal. The goal is frozen in
// whole USD at creation time; the original currency and amount are kept so
// the conversion stays auditable.
type Wish struct {
	ID          uint   `json:"id"`
	EventID     uint   `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// PriceUSD is the funding goal in whole US dollars.
	PriceUSD         int64   `json:"price_usd"`
	OriginalCurrency string  `json:"original_currency"`
	OriginalAmount   float64 `json:"original_amount"`

	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
