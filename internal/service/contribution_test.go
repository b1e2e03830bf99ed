package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/payments"
	"github.com/wishwell/wishwell-api/internal/repository"
	"github.com/wishwell/wishwell-api/internal/service"
)

type stubUserRepo struct {
	users map[uint]domain.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

type stubPayments struct {
	lastIntent    payments.IntentParams
	contributions []domain.Contribution
}

func (p *stubPayments) CreatePaymentIntent(_ context.Context, params payments.IntentParams) (*stripe.PaymentIntent, error) {
	p.lastIntent = params

	return &stripe.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

func (p *stubPayments) ListContributions(_ context.Context, _, _ string) ([]domain.Contribution, error) {
	return p.contributions, nil
}

func contributionFixture(t *testing.T, owner domain.User) (*service.ContributionService, *stubPayments, domain.Event, domain.Wish) {
	t.Helper()
	ctx := context.Background()

	eventRepo := newStubEventRepo()
	wishRepo := newStubWishRepo()

	event, err := service.NewEventService(eventRepo).CreateEvent(ctx, domain.Event{UserID: owner.ID, Name: "Sarah's Wedding!"})
	require.NoError(t, err)

	wishSvc := service.NewWishService(wishRepo, eventRepo, fixedConverter{})
	wish, err := wishSvc.CreateWish(ctx, domain.Wish{
		EventID:          event.ID,
		Title:            "Stand mixer",
		OriginalAmount:   450,
		OriginalCurrency: "USD",
	}, owner.ID)
	require.NoError(t, err)

	stripeStub := &stubPayments{}
	svc := service.NewContributionService(stripeStub, eventRepo, wishRepo, &stubUserRepo{
		users: map[uint]domain.User{owner.ID: owner},
	})

	return svc, stripeStub, event, wish
}

func TestContributionService_CreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("routes the charge to the owner's account", func(t *testing.T) {
		owner := domain.User{ID: 1, StripeAccountID: "acct_123", ChargesEnabled: true}
		svc, stripeStub, event, wish := contributionFixture(t, owner)

		checkout, err := svc.CreateIntent(ctx, wish.ID, 2500, "Alice")

		require.NoError(t, err)
		assert.Equal(t, "pi_test", checkout.PaymentID)
		assert.Equal(t, "pi_test_secret", checkout.ClientSecret)
		assert.Equal(t, payments.IntentParams{
			AmountCents: 2500,
			EventID:     event.ID,
			WishID:      wish.ID,
			SenderName:  "Alice",
			Destination: "acct_123",
		}, stripeStub.lastIntent)
	})

	t.Run("owner without completed onboarding cannot be paid", func(t *testing.T) {
		owner := domain.User{ID: 1, StripeAccountID: "acct_123", ChargesEnabled: false}
		svc, _, _, wish := contributionFixture(t, owner)

		_, err := svc.CreateIntent(ctx, wish.ID, 2500, "Alice")

		assert.ErrorIs(t, err, service.ErrPayoutNotReady)
	})

	t.Run("owner without an account at all", func(t *testing.T) {
		owner := domain.User{ID: 1}
		svc, _, _, wish := contributionFixture(t, owner)

		_, err := svc.CreateIntent(ctx, wish.ID, 2500, "Alice")

		assert.ErrorIs(t, err, service.ErrPayoutNotReady)
	})

	t.Run("unknown wish", func(t *testing.T) {
		owner := domain.User{ID: 1, StripeAccountID: "acct_123", ChargesEnabled: true}
		svc, _, _, _ := contributionFixture(t, owner)

		_, err := svc.CreateIntent(ctx, 999, 2500, "Alice")

		assert.ErrorIs(t, err, repository.ErrWishNotFound)
	})
}

func TestContributionService_Funding(t *testing.T) {
	ctx := context.Background()
	owner := domain.User{ID: 1, StripeAccountID: "acct_123", ChargesEnabled: true}
	svc, stripeStub, event, wish := contributionFixture(t, owner)

	stripeStub.contributions = []domain.Contribution{
		{PaymentID: "pi_1", EventID: event.ID, WishID: wish.ID, SenderName: "Alice", Amount: decimal.NewFromInt(25)},
		{PaymentID: "pi_2", EventID: event.ID, WishID: wish.ID, SenderName: "Bob", Amount: decimal.RequireFromString("17.50")},
		{PaymentID: "pi_3", EventID: event.ID, WishID: 999, SenderName: "Ghost", Amount: decimal.NewFromInt(5)},
	}

	result, err := svc.Funding(ctx, event.ID)

	require.NoError(t, err)
	require.Len(t, result.Wishes, 1)
	assert.True(t, result.Wishes[0].Paid.Equal(decimal.RequireFromString("42.50")))
	require.Len(t, result.Orphaned, 1)
	assert.Equal(t, "pi_3", result.Orphaned[0].PaymentID)

	_, err = svc.Funding(ctx, 999)
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}
