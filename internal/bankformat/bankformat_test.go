package bankformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwell/wishwell-api/internal/bankformat"
)

func TestLookup(t *testing.T) {
	t.Run("known country", func(t *testing.T) {
		c, err := bankformat.Lookup("GB")

		require.NoError(t, err)
		assert.Equal(t, "GB", c.Code)
		assert.Equal(t, "GBP", c.Currency)
		assert.Equal(t, "+44", c.PhonePrefix)
	})

	t.Run("lowercase code is accepted", func(t *testing.T) {
		c, err := bankformat.Lookup("us")

		require.NoError(t, err)
		assert.Equal(t, "US", c.Code)
	})

	t.Run("unknown country is an error, never a default", func(t *testing.T) {
		_, err := bankformat.Lookup("XX")

		assert.ErrorIs(t, err, bankformat.ErrUnsupportedCountry)
	})
}

func TestCountries(t *testing.T) {
	countries := bankformat.Countries()

	require.NotEmpty(t, countries)
	for i := 1; i < len(countries); i++ {
		assert.Less(t, countries[i-1].Code, countries[i].Code)
	}

	for _, c := range countries {
		assert.NotEmpty(t, c.BankFields, "country %s has no bank fields", c.Code)
		for _, f := range c.BankFields {
			assert.True(t, f.Required, "country %s field %s", c.Code, f.Name)
		}
	}
}

func TestCreateExternalAccount(t *testing.T) {
	t.Run("US payload has exactly the routing schema fields", func(t *testing.T) {
		us, err := bankformat.Lookup("US")
		require.NoError(t, err)

		payload, err := bankformat.CreateExternalAccount(us, map[string]string{
			"routing_number":      "110000000",
			"account_number":      "000123456789",
			"account_holder_name": "Jane Doe",
		})

		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"object":              "bank_account",
			"country":             "US",
			"currency":            "usd",
			"account_holder_type": "individual",
			"routing_number":      "110000000",
			"account_number":      "000123456789",
			"account_holder_name": "Jane Doe",
		}, payload)
	})

	t.Run("IBAN country omits the routing number key entirely", func(t *testing.T) {
		de, err := bankformat.Lookup("DE")
		require.NoError(t, err)

		payload, err := bankformat.CreateExternalAccount(de, map[string]string{
			"account_number":      "DE89370400440532013000",
			"account_holder_name": "Max Mustermann",
		})

		require.NoError(t, err)
		assert.NotContains(t, payload, "routing_number")
		assert.Equal(t, "eur", payload["currency"])
		assert.Equal(t, "DE89370400440532013000", payload["account_number"])
	})

	t.Run("extraneous detail keys are dropped", func(t *testing.T) {
		fr, err := bankformat.Lookup("FR")
		require.NoError(t, err)

		payload, err := bankformat.CreateExternalAccount(fr, map[string]string{
			"account_number":      "FR1420041010050500013M02606",
			"account_holder_name": "Jean Dupont",
			"swift_code":          "should-not-appear",
		})

		require.NoError(t, err)
		assert.NotContains(t, payload, "swift_code")
	})

	t.Run("missing required field", func(t *testing.T) {
		us, err := bankformat.Lookup("US")
		require.NoError(t, err)

		_, err = bankformat.CreateExternalAccount(us, map[string]string{
			"account_number":      "000123456789",
			"account_holder_name": "Jane Doe",
		})

		assert.ErrorIs(t, err, bankformat.ErrMissingBankField)
		assert.Contains(t, err.Error(), "routing_number")
	})

	t.Run("whitespace-only value counts as missing", func(t *testing.T) {
		gb, err := bankformat.Lookup("GB")
		require.NoError(t, err)

		_, err = bankformat.CreateExternalAccount(gb, map[string]string{
			"routing_number":      "   ",
			"account_number":      "00012345",
			"account_holder_name": "Jane Doe",
		})

		assert.ErrorIs(t, err, bankformat.ErrMissingBankField)
	})
}
