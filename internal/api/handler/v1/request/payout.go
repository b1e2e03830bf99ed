package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var phoneExp = regexp.MustCompile(`^\d{4,14}$`)

// CreatePayoutAccountRequest is the onboarding form. BankDetails is
// free-form here; the per-country field schema is enforced downstream where
// the external-account payload is built.
type CreatePayoutAccountRequest struct {
	Country     string            `json:"country"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Phone       string            `json:"phone"`
	BankDetails map[string]string `json:"bank_details"`
}

func (req *CreatePayoutAccountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Country, validation.Required, validation.Length(2, 2)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.BankDetails, validation.Required),
	)
}
