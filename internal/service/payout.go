package service

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"

	"github.com/wishwell/wishwell-api/internal/bankformat"
	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/payments"
)

var (
	ErrUnsupportedCountry  = bankformat.ErrUnsupportedCountry
	ErrMissingBankField    = bankformat.ErrMissingBankField
	ErrPayoutAccountExists = errors.New("payout account already exists")
	ErrNoPayoutAccount     = errors.New("no payout account")
)

type PayoutUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	SetStripeAccountID(ctx context.Context, id uint, accountID string) error
	UpdatePayoutStatus(ctx context.Context, accountID string, detailsSubmitted, chargesEnabled, payoutsEnabled bool) error
	ClearPayoutAccount(ctx context.Context, id uint) error
}

type PayoutPayments interface {
	CreateConnectedAccount(ctx context.Context, country, email string, person payments.PersonDetails, payload map[string]interface{}) (*stripe.Account, error)
	OnboardingLink(ctx context.Context, accountID string) (string, error)
	GetAccount(ctx context.Context, accountID string) (*stripe.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
	Balance(ctx context.Context, accountID string) (*stripe.Balance, error)
	ListPayouts(ctx context.Context, accountID string, limit int64) ([]*stripe.Payout, error)
}

type PayoutService struct {
	users  PayoutUserRepository
	stripe PayoutPayments
}

func NewPayoutService(users PayoutUserRepository, stripe PayoutPayments) *PayoutService {
	return &PayoutService{
		users:  users,
		stripe: stripe,
	}
}

// SupportedCountries lists the payout countries with the bank fields each
// one requires; the onboarding form is rendered from this.
func (s *PayoutService) SupportedCountries() []bankformat.Country {
	return bankformat.Countries()
}

// CreateAccountParams carries the onboarding form.
type CreateAccountParams struct {
	Country     string
	FirstName   string
	LastName    string
	Phone       string
	BankDetails map[string]string
}

// PayoutStatus is the onboarding state reported back to the dashboard.
type PayoutStatus struct {
	AccountID        string `json:"account_id,omitempty"`
	DetailsSubmitted bool   `json:"details_submitted"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	SetupComplete    bool   `json:"setup_complete"`
}

// CreateAccount builds the country-specific external-account payload, opens
// the connected account, stores the linkage and returns the hosted
// onboarding URL.
func (s *PayoutService) CreateAccount(ctx context.Context, userID uint, p CreateAccountParams) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if user.StripeAccountID != "" {
		return "", ErrPayoutAccountExists
	}

	country, err := bankformat.Lookup(p.Country)
	if err != nil {
		return "", err
	}

	payload, err := bankformat.CreateExternalAccount(country, p.BankDetails)
	if err != nil {
		return "", err
	}

	person := payments.PersonDetails{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     user.Email,
		Phone:     country.PhonePrefix + p.Phone,
	}

	account, err := s.stripe.CreateConnectedAccount(ctx, country.Code, user.Email, person, payload)
	if err != nil {
		return "", fmt.Errorf("s.stripe.CreateConnectedAccount -> %w", err)
	}

	if err = s.users.SetStripeAccountID(ctx, userID, account.ID); err != nil {
		return "", fmt.Errorf("s.users.SetStripeAccountID -> %w", err)
	}

	link, err := s.stripe.OnboardingLink(ctx, account.ID)
	if err != nil {
		return "", fmt.Errorf("s.stripe.OnboardingLink -> %w", err)
	}

	return link, nil
}

// Status fetches live onboarding flags from the processor and persists them,
// so the local record converges even if a webhook was missed.
func (s *PayoutService) Status(ctx context.Context, userID uint) (PayoutStatus, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return PayoutStatus{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if user.StripeAccountID == "" {
		return PayoutStatus{}, ErrNoPayoutAccount
	}

	account, err := s.stripe.GetAccount(ctx, user.StripeAccountID)
	if err != nil {
		return PayoutStatus{}, fmt.Errorf("s.stripe.GetAccount -> %w", err)
	}

	if err = s.users.UpdatePayoutStatus(ctx, account.ID,
		account.DetailsSubmitted, account.ChargesEnabled, account.PayoutsEnabled); err != nil {
		return PayoutStatus{}, fmt.Errorf("s.users.UpdatePayoutStatus -> %w", err)
	}

	return PayoutStatus{
		AccountID:        account.ID,
		DetailsSubmitted: account.DetailsSubmitted,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		SetupComplete:    account.DetailsSubmitted && account.ChargesEnabled && account.PayoutsEnabled,
	}, nil
}

// SyncAccountStatus applies flags pushed by an account.updated webhook.
func (s *PayoutService) SyncAccountStatus(ctx context.Context, account *stripe.Account) error {
	if err := s.users.UpdatePayoutStatus(ctx, account.ID,
		account.DetailsSubmitted, account.ChargesEnabled, account.PayoutsEnabled); err != nil {
		return fmt.Errorf("s.users.UpdatePayoutStatus -> %w", err)
	}

	return nil
}

func (s *PayoutService) Balance(ctx context.Context, userID uint) (*stripe.Balance, error) {
	user, err := s.requireAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.stripe.Balance(ctx, user.StripeAccountID)
	if err != nil {
		return nil, fmt.Errorf("s.stripe.Balance -> %w", err)
	}

	return balance, nil
}

func (s *PayoutService) ListPayouts(ctx context.Context, userID uint, limit int64) ([]*stripe.Payout, error) {
	user, err := s.requireAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	payouts, err := s.stripe.ListPayouts(ctx, user.StripeAccountID, limit)
	if err != nil {
		return nil, fmt.Errorf("s.stripe.ListPayouts -> %w", err)
	}

	return payouts, nil
}

func (s *PayoutService) DeleteAccount(ctx context.Context, userID uint) error {
	user, err := s.requireAccount(ctx, userID)
	if err != nil {
		return err
	}

	if err = s.stripe.DeleteAccount(ctx, user.StripeAccountID); err != nil {
		return fmt.Errorf("s.stripe.DeleteAccount -> %w", err)
	}

	if err = s.users.ClearPayoutAccount(ctx, userID); err != nil {
		return fmt.Errorf("s.users.ClearPayoutAccount -> %w", err)
	}

	return nil
}

func (s *PayoutService) requireAccount(ctx context.Context, userID uint) (domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if user.StripeAccountID == "" {
		return domain.User{}, ErrNoPayoutAccount
	}

	return user, nil
}
