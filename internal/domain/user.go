package domain

import "time"

// User is an account owner. Payout-account linkage and onboarding flags
// live directly on the user record; there is exactly one payout account per
// user.
type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`

	// Currency is the user's preferred display currency (ISO 4217).
	Currency string `json:"currency"`

	// StripeAccountID is the connected payout account, empty until onboarding.
	StripeAccountID  string `json:"stripe_account_id,omitempty"`
	DetailsSubmitted bool   `json:"details_submitted"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	SetupComplete    bool   `json:"setup_complete"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
