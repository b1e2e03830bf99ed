package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

func TestCardDAO_Upsert(t *testing.T) {
	d := dao.NewCardDAO(openTestDB(t))
	ctx := context.Background()

	first, err := d.Upsert(ctx, dao.Card{
		PaymentID: "pi_123",
		Text:      "Congratulations!",
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// A checkout retry posts the card again; the row is replaced in place.
	second, err := d.Upsert(ctx, dao.Card{
		PaymentID: "pi_123",
		Text:      "Congratulations, both of you!",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	card, err := d.FindByPaymentID(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "Congratulations, both of you!", card.Text)
}

func TestCardDAO_FindByPaymentID_NotFound(t *testing.T) {
	d := dao.NewCardDAO(openTestDB(t))

	_, err := d.FindByPaymentID(context.Background(), "pi_missing")

	assert.ErrorIs(t, err, dao.ErrCardNotFound)
}

func TestWebhookEventDAO_Insert(t *testing.T) {
	d := dao.NewWebhookEventDAO(openTestDB(t))
	ctx := context.Background()

	err := d.Insert(ctx, dao.WebhookEvent{
		StripeEventID: "evt_123",
		Type:          "payment_intent.succeeded",
		Payload:       "{}",
	})
	require.NoError(t, err)

	// Redelivery of the same event id is acknowledged silently.
	err = d.Insert(ctx, dao.WebhookEvent{
		StripeEventID: "evt_123",
		Type:          "payment_intent.succeeded",
		Payload:       "{}",
	})
	assert.NoError(t, err)
}
