// Package bankformat maps a country code to the bank details required to
// register a payout destination there, and builds the external-account
// payload the payment processor expects for that country.
package bankformat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedCountry = errors.New("unsupported payout country")
	ErrMissingBankField   = errors.New("missing required bank field")
)

// AccountHolderType is constant across all supported countries; the platform
// only onboards individual recipients.
const AccountHolderType = "individual"

type BankField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

type Country struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Currency    string      `json:"currency"`
	PhonePrefix string      `json:"phone_prefix"`
	BankFields  []BankField `json:"bank_fields"`
}

var (
	routingAndAccount = []BankField{
		{Name: "routing_number", Label: "Routing number", Placeholder: "110000000", Required: true},
		{Name: "account_number", Label: "Account number", Placeholder: "000123456789", Required: true},
		{Name: "account_holder_name", Label: "Account holder name", Placeholder: "Jane Doe", Required: true},
	}
	sortCodeAndAccount = []BankField{
		{Name: "routing_number", Label: "Sort code", Placeholder: "10-88-00", Required: true},
		{Name: "account_number", Label: "Account number", Placeholder: "00012345", Required: true},
		{Name: "account_holder_name", Label: "Account holder name", Placeholder: "Jane Doe", Required: true},
	}
	bsbAndAccount = []BankField{
		{Name: "routing_number", Label: "BSB", Placeholder: "110000", Required: true},
		{Name: "account_number", Label: "Account number", Placeholder: "000123456", Required: true},
		{Name: "account_holder_name", Label: "Account holder name", Placeholder: "Jane Doe", Required: true},
	}
	ibanOnly = []BankField{
		{Name: "account_number", Label: "IBAN", Placeholder: "DE89370400440532013000", Required: true},
		{Name: "account_holder_name", Label: "Account holder name", Placeholder: "Jane Doe", Required: true},
	}
)

// countries is keyed by ISO 3166-1 alpha-2 code. The field set per country
// follows what the processor requires to attach a bank account there:
// routing+account in the US and Canada, sort code in the UK, BSB in
// Australia/New Zealand, IBAN across the Eurozone.
var countries = map[string]Country{
	"US": {Code: "US", Name: "United States", Currency: "USD", PhonePrefix: "+1", BankFields: routingAndAccount},
	"CA": {Code: "CA", Name: "Canada", Currency: "CAD", PhonePrefix: "+1", BankFields: routingAndAccount},
	"GB": {Code: "GB", Name: "United Kingdom", Currency: "GBP", PhonePrefix: "+44", BankFields: sortCodeAndAccount},
	"AU": {Code: "AU", Name: "Australia", Currency: "AUD", PhonePrefix: "+61", BankFields: bsbAndAccount},
	"NZ": {Code: "NZ", Name: "New Zealand", Currency: "NZD", PhonePrefix: "+64", BankFields: bsbAndAccount},
	"SG": {Code: "SG", Name: "Singapore", Currency: "SGD", PhonePrefix: "+65", BankFields: routingAndAccount},
	"FR": {Code: "FR", Name: "France", Currency: "EUR", PhonePrefix: "+33", BankFields: ibanOnly},
	"DE": {Code: "DE", Name: "Germany", Currency: "EUR", PhonePrefix: "+49", BankFields: ibanOnly},
	"ES": {Code: "ES", Name: "Spain", Currency: "EUR", PhonePrefix: "+34", BankFields: ibanOnly},
	"IT": {Code: "IT", Name: "Italy", Currency: "EUR", PhonePrefix: "+39", BankFields: ibanOnly},
	"NL": {Code: "NL", Name: "Netherlands", Currency: "EUR", PhonePrefix: "+31", BankFields: ibanOnly},
	"IE": {Code: "IE", Name: "Ireland", Currency: "EUR", PhonePrefix: "+353", BankFields: ibanOnly},
}

// Lookup returns the configuration for a country code. An unknown code is a
// caller-visible error, never a silent default.
func Lookup(code string) (Country, error) {
	c, ok := countries[strings.ToUpper(code)]
	if !ok {
		return Country{}, fmt.Errorf("%w: %q", ErrUnsupportedCountry, code)
	}

	return c, nil
}

// Countries returns every supported country, ordered by code.
func Countries() []Country {
	codes := make([]string, 0, len(countries))
	for code := range countries {
		codes = append(codes, code)
	}
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j] < codes[j-1]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}

	out := make([]Country, 0, len(codes))
	for _, code := range codes {
		out = append(out, countries[code])
	}

	return out
}

// CreateExternalAccount assembles the processor's bank-account creation
// payload for the given country. The payload contains exactly the fields of
// the country's schema (extraneous keys in details are dropped), plus the
// constant object type and account holder type. A missing required field is
// an error.
func CreateExternalAccount(c Country, details map[string]string) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"object":              "bank_account",
		"country":             c.Code,
		"currency":            strings.ToLower(c.Currency),
		"account_holder_type": AccountHolderType,
	}

	for _, f := range c.BankFields {
		v := strings.TrimSpace(details[f.Name])
		if v == "" {
			if f.Required {
				return nil, fmt.Errorf("%w: %s", ErrMissingBankField, f.Name)
			}
			continue
		}
		payload[f.Name] = v
	}

	return payload, nil
}
