package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is a successful payment read back from the processor. The
// application never mutates these; they are aggregated on read into per-wish
// funding totals.
type Contribution struct {
	PaymentID  string          `json:"payment_id"`
	EventID    uint            `json:"event_id"`
	WishID     uint            `json:"wish_id"`
	SenderName string          `json:"sender_name"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}
