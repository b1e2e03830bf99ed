package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	stripe "github.com/stripe/stripe-go/v72"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/funding"
	"github.com/wishwell/wishwell-api/internal/payments"
)

var ErrPayoutNotReady = errors.New("event owner cannot receive payments yet")

type ContributionPayments interface {
	CreatePaymentIntent(ctx context.Context, p payments.IntentParams) (*stripe.PaymentIntent, error)
	ListContributions(ctx context.Context, metaKey, metaValue string) ([]domain.Contribution, error)
}

type ContributionUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type ContributionService struct {
	stripe ContributionPayments
	events EventRepository
	wishes WishRepository
	users  ContributionUserRepository
}

func NewContributionService(stripe ContributionPayments, events EventRepository, wishes WishRepository, users ContributionUserRepository) *ContributionService {
	return &ContributionService{
		stripe: stripe,
		events: events,
		wishes: wishes,
		users:  users,
	}
}

// Checkout is what the contributor's browser needs to complete payment.
type Checkout struct {
	PaymentID    string `json:"payment_id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent opens a destination-charge intent routed to the event
// owner's connected account. The owner must have charges enabled; an
// unfinished onboarding is a caller-visible error, not a deferred payment.
func (s *ContributionService) CreateIntent(ctx context.Context, wishID uint, amountCents int64, senderName string) (Checkout, error) {
	wish, err := s.wishes.FindByID(ctx, wishID)
	if err != nil {
		return Checkout{}, err
	}

	event, err := s.events.FindByID(ctx, wish.EventID)
	if err != nil {
		return Checkout{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	owner, err := s.users.FindByID(ctx, event.UserID)
	if err != nil {
		return Checkout{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if owner.StripeAccountID == "" || !owner.ChargesEnabled {
		return Checkout{}, ErrPayoutNotReady
	}

	intent, err := s.stripe.CreatePaymentIntent(ctx, payments.IntentParams{
		AmountCents: amountCents,
		EventID:     event.ID,
		WishID:      wish.ID,
		SenderName:  senderName,
		Destination: owner.StripeAccountID,
	})
	if err != nil {
		return Checkout{}, fmt.Errorf("s.stripe.CreatePaymentIntent -> %w", err)
	}

	return Checkout{
		PaymentID:    intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// ListByEvent returns the event's successful contributions in processor
// order (newest first).
func (s *ContributionService) ListByEvent(ctx context.Context, eventID uint) ([]domain.Contribution, error) {
	contributions, err := s.stripe.ListContributions(ctx, payments.MetaEventID, formatID(eventID))
	if err != nil {
		return nil, fmt.Errorf("s.stripe.ListContributions -> %w", err)
	}

	return contributions, nil
}

func (s *ContributionService) ListByWish(ctx context.Context, wishID uint) ([]domain.Contribution, error) {
	contributions, err := s.stripe.ListContributions(ctx, payments.MetaWishID, formatID(wishID))
	if err != nil {
		return nil, fmt.Errorf("s.stripe.ListContributions -> %w", err)
	}

	return contributions, nil
}

// Funding aggregates the event's contributions into per-wish totals.
func (s *ContributionService) Funding(ctx context.Context, eventID uint) (funding.Result, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return funding.Result{}, err
	}

	contributions, err := s.ListByEvent(ctx, eventID)
	if err != nil {
		return funding.Result{}, err
	}

	wishes, err := s.wishes.FindByEventID(ctx, eventID)
	if err != nil {
		return funding.Result{}, fmt.Errorf("s.wishes.FindByEventID -> %w", err)
	}

	return funding.Aggregate(contributions, wishes), nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
