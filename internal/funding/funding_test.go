package funding_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/funding"
)

func contribution(wishID uint, sender string, amount string) domain.Contribution {
	return domain.Contribution{
		PaymentID:  "pi_" + sender,
		EventID:    1,
		WishID:     wishID,
		SenderName: sender,
		Amount:     decimal.RequireFromString(amount),
		Currency:   "usd",
	}
}

func TestAggregate(t *testing.T) {
	wishes := []domain.Wish{
		{ID: 10, EventID: 1, Title: "Stand mixer", PriceUSD: 100},
		{ID: 11, EventID: 1, Title: "Honeymoon fund", PriceUSD: 500},
	}

	t.Run("sums contributions per wish", func(t *testing.T) {
		payments := []domain.Contribution{
			contribution(10, "Alice", "25"),
			contribution(10, "Bob", "17.50"),
			contribution(11, "Carol", "100"),
		}

		result := funding.Aggregate(payments, wishes)

		require.Len(t, result.Wishes, 2)
		assert.True(t, result.Wishes[0].Paid.Equal(decimal.RequireFromString("42.50")),
			"got %s", result.Wishes[0].Paid)
		assert.True(t, result.Wishes[1].Paid.Equal(decimal.NewFromInt(100)))

		require.Len(t, result.Wishes[0].Contributors, 2)
		assert.Equal(t, "Alice", result.Wishes[0].Contributors[0].Name)
		assert.Equal(t, "Bob", result.Wishes[0].Contributors[1].Name)
		assert.Empty(t, result.Orphaned)
	})

	t.Run("totals are independent of payment order", func(t *testing.T) {
		payments := []domain.Contribution{
			contribution(10, "Alice", "25"),
			contribution(10, "Bob", "17.50"),
		}
		reversed := []domain.Contribution{payments[1], payments[0]}

		a := funding.Aggregate(payments, wishes)
		b := funding.Aggregate(reversed, wishes)

		assert.True(t, a.Wishes[0].Paid.Equal(b.Wishes[0].Paid))
	})

	t.Run("wish without payments stays at zero", func(t *testing.T) {
		result := funding.Aggregate(nil, wishes)

		require.Len(t, result.Wishes, 2)
		assert.True(t, result.Wishes[0].Paid.IsZero())
		assert.Empty(t, result.Wishes[0].Contributors)
	})

	t.Run("payment for a deleted wish is surfaced, not dropped", func(t *testing.T) {
		payments := []domain.Contribution{
			contribution(10, "Alice", "25"),
			contribution(99, "Ghost", "40"),
		}

		result := funding.Aggregate(payments, wishes)

		require.Len(t, result.Orphaned, 1)
		assert.Equal(t, uint(99), result.Orphaned[0].WishID)
		assert.True(t, result.Wishes[0].Paid.Equal(decimal.NewFromInt(25)))
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		payments := []domain.Contribution{
			contribution(10, "Alice", "25"),
		}
		paymentsCopy := make([]domain.Contribution, len(payments))
		copy(paymentsCopy, payments)
		wishesCopy := make([]domain.Wish, len(wishes))
		copy(wishesCopy, wishes)

		funding.Aggregate(payments, wishes)

		assert.Equal(t, paymentsCopy, payments)
		assert.Equal(t, wishesCopy, wishes)
	})
}
