package service

import (
	"context"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/currency"
	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound

	ErrUnsupportedCurrency = currency.ErrUnsupportedCurrency
)

type AccountUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateCurrency(ctx context.Context, id uint, currency string) error
	Delete(ctx context.Context, id uint) error
}

// AccountPayments is the slice of the payment processor the account service
// needs: tearing down the connected account when a user deletes theirs.
type AccountPayments interface {
	DeleteAccount(ctx context.Context, accountID string) error
}

type AccountService struct {
	repo   AccountUserRepository
	stripe AccountPayments
}

func NewAccountService(repo AccountUserRepository, stripe AccountPayments) *AccountService {
	return &AccountService{
		repo:   repo,
		stripe: stripe,
	}
}

func (s *AccountService) GetAccount(ctx context.Context, userID uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *AccountService) UpdateCurrency(ctx context.Context, userID uint, code string) error {
	if !currency.Supported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	if err := s.repo.UpdateCurrency(ctx, userID, code); err != nil {
		return fmt.Errorf("s.repo.UpdateCurrency -> %w", err)
	}

	return nil
}

// DeleteAccount removes the connected payout account first, then the local
// record. If the external delete fails the local record survives, so the
// user can retry.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uint) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if user.StripeAccountID != "" {
		if err = s.stripe.DeleteAccount(ctx, user.StripeAccountID); err != nil {
			return fmt.Errorf("s.stripe.DeleteAccount -> %w", err)
		}
	}

	if err = s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
