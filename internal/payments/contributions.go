package payments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v72"

	"github.com/wishwell/wishwell-api/internal/domain"
)

// intentPageSize bounds a single listing call; the processor returns intents
// newest first and that order is preserved downstream.
const intentPageSize = 100

// IntentParams describes a contribution checkout.
type IntentParams struct {
	AmountCents int64
	EventID     uint
	WishID      uint
	SenderName  string
	// Destination is the event owner's connected account.
	Destination string
}

// CreatePaymentIntent creates a destination-charge intent in USD with the
// platform fee taken as an application fee. The wish/event linkage travels
// in metadata; it is the only join key the read path has.
func (c *Client) CreatePaymentIntent(ctx context.Context, p IntentParams) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(p.AmountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(p.Destination),
		},
	}
	params.Context = ctx
	if c.feeBPS > 0 {
		params.ApplicationFeeAmount = stripe.Int64(p.AmountCents * c.feeBPS / 10000)
	}
	params.AddMetadata(MetaEventID, strconv.FormatUint(uint64(p.EventID), 10))
	params.AddMetadata(MetaWishID, strconv.FormatUint(uint64(p.WishID), 10))
	params.AddMetadata(MetaSenderName, p.SenderName)

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("c.api.PaymentIntents.New -> %w", err)
	}

	return intent, nil
}

// ListContributions returns successful payments whose metadata key matches
// value, newest first. The processor's list API cannot filter on metadata,
// so filtering happens here after the fetch.
func (c *Client) ListContributions(ctx context.Context, metaKey, metaValue string) ([]domain.Contribution, error) {
	params := &stripe.PaymentIntentListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(intentPageSize)

	var out []domain.Contribution
	iter := c.api.PaymentIntents.List(params)
	for iter.Next() {
		pi := iter.PaymentIntent()
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			continue
		}
		if pi.Metadata[metaKey] != metaValue {
			continue
		}
		out = append(out, toContribution(pi))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("c.api.PaymentIntents.List -> %w", err)
	}

	return out, nil
}

func toContribution(pi *stripe.PaymentIntent) domain.Contribution {
	eventID, _ := strconv.ParseUint(pi.Metadata[MetaEventID], 10, 64)
	wishID, _ := strconv.ParseUint(pi.Metadata[MetaWishID], 10, 64)

	return domain.Contribution{
		PaymentID:  pi.ID,
		EventID:    uint(eventID),
		WishID:     uint(wishID),
		SenderName: pi.Metadata[MetaSenderName],
		Amount:     decimal.NewFromInt(pi.Amount).Div(decimal.NewFromInt(100)),
		Currency:   string(pi.Currency),
		CreatedAt:  time.Unix(pi.Created, 0).UTC(),
	}
}
