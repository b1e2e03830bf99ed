// Package payments wraps the Stripe client for everything the API needs:
// connected payout accounts, destination-charge payment intents, balances,
// payouts and webhook verification. No retries anywhere; a failed call
// surfaces immediately.
package payments

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"

	"github.com/wishwell/wishwell-api/internal/config"
)

// Metadata keys attached to every payment intent so payments can be joined
// back to wishes and events on read.
const (
	MetaEventID    = "event_id"
	MetaWishID     = "wish_id"
	MetaSenderName = "sender_name"
)

type Client struct {
	api           *client.API
	webhookSecret string
	feeBPS        int64
	baseURL       string
}

func NewClient(conf *config.StripeConfig, baseURL string) *Client {
	api := &client.API{}
	api.Init(conf.SecretKey, nil)

	return &Client{
		api:           api,
		webhookSecret: conf.WebhookSecret,
		feeBPS:        conf.PlatformFeeBPS,
		baseURL:       baseURL,
	}
}

// PersonDetails is the individual behind a connected account.
type PersonDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// CreateConnectedAccount creates a Custom connected account with the
// transfers capability and attaches the bank account described by payload,
// which must come from bankformat.CreateExternalAccount.
func (c *Client) CreateConnectedAccount(ctx context.Context, country, email string, person PersonDetails, payload map[string]interface{}) (*stripe.Account, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeCustom)),
		Country:      stripe.String(country),
		Email:        stripe.String(email),
		BusinessType: stripe.String("individual"),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
		},
		Individual: &stripe.PersonParams{
			FirstName: stripe.String(person.FirstName),
			LastName:  stripe.String(person.LastName),
			Email:     stripe.String(person.Email),
			Phone:     stripe.String(person.Phone),
		},
		ExternalAccount: externalAccountParams(payload),
	}
	params.Context = ctx

	account, err := c.api.Account.New(params)
	if err != nil {
		return nil, fmt.Errorf("c.api.Account.New -> %w", err)
	}

	return account, nil
}

func externalAccountParams(payload map[string]interface{}) *stripe.AccountExternalAccountParams {
	str := func(key string) *string {
		if v, ok := payload[key].(string); ok && v != "" {
			return stripe.String(v)
		}
		return nil
	}

	return &stripe.AccountExternalAccountParams{
		Country:           str("country"),
		Currency:          str("currency"),
		RoutingNumber:     str("routing_number"),
		AccountNumber:     str("account_number"),
		AccountHolderName: str("account_holder_name"),
		AccountHolderType: str("account_holder_type"),
	}
}

// OnboardingLink returns a fresh hosted-onboarding URL for the account.
func (c *Client) OnboardingLink(ctx context.Context, accountID string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(c.baseURL + "/onboarding/refresh"),
		ReturnURL:  stripe.String(c.baseURL + "/onboarding/complete"),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := c.api.AccountLinks.New(params)
	if err != nil {
		return "", fmt.Errorf("c.api.AccountLinks.New -> %w", err)
	}

	return link.URL, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := c.api.Account.GetByID(accountID, params)
	if err != nil {
		return nil, fmt.Errorf("c.api.Account.GetByID -> %w", err)
	}

	return account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	params := &stripe.AccountParams{}
	params.Context = ctx

	if _, err := c.api.Account.Del(accountID, params); err != nil {
		return fmt.Errorf("c.api.Account.Del -> %w", err)
	}

	return nil
}

// Balance returns the connected account's balance.
func (c *Client) Balance(ctx context.Context, accountID string) (*stripe.Balance, error) {
	params := &stripe.BalanceParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	balance, err := c.api.Balance.Get(params)
	if err != nil {
		return nil, fmt.Errorf("c.api.Balance.Get -> %w", err)
	}

	return balance, nil
}

// ListPayouts returns the connected account's most recent payouts.
func (c *Client) ListPayouts(ctx context.Context, accountID string, limit int64) ([]*stripe.Payout, error) {
	params := &stripe.PayoutListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)
	params.SetStripeAccount(accountID)

	var payouts []*stripe.Payout
	iter := c.api.Payouts.List(params)
	for iter.Next() {
		payouts = append(payouts, iter.Payout())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("c.api.Payouts.List -> %w", err)
	}

	return payouts, nil
}

// VerifyWebhook checks the signature header against the configured signing
// secret and returns the decoded event.
func (c *Client) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("webhook.ConstructEvent -> %w", err)
	}

	return event, nil
}
