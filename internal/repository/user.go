package repository

import (
	"context"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindByStripeAccountID(ctx context.Context, accountID string) (dao.User, error)
	UpdateCurrency(ctx context.Context, id uint, currency string) error
	SetStripeAccountID(ctx context.Context, id uint, accountID string) error
	UpdatePayoutStatus(ctx context.Context, accountID string, detailsSubmitted, chargesEnabled, payoutsEnabled bool) error
	ClearPayoutAccount(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	return r.daoToDomain(user), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	return r.daoToDomain(user), nil
}

func (r *UserRepository) FindByStripeAccountID(ctx context.Context, accountID string) (domain.User, error) {
	user, err := r.dao.FindByStripeAccountID(ctx, accountID)
	if err != nil {
		return domain.User{}, err
	}

	return r.daoToDomain(user), nil
}

func (r *UserRepository) UpdateCurrency(ctx context.Context, id uint, currency string) error {
	if err := r.dao.UpdateCurrency(ctx, id, currency); err != nil {
		return fmt.Errorf("r.dao.UpdateCurrency -> %w", err)
	}

	return nil
}

func (r *UserRepository) SetStripeAccountID(ctx context.Context, id uint, accountID string) error {
	if err := r.dao.SetStripeAccountID(ctx, id, accountID); err != nil {
		return fmt.Errorf("r.dao.SetStripeAccountID -> %w", err)
	}

	return nil
}

func (r *UserRepository) UpdatePayoutStatus(ctx context.Context, accountID string, detailsSubmitted, chargesEnabled, payoutsEnabled bool) error {
	if err := r.dao.UpdatePayoutStatus(ctx, accountID, detailsSubmitted, chargesEnabled, payoutsEnabled); err != nil {
		return fmt.Errorf("r.dao.UpdatePayoutStatus -> %w", err)
	}

	return nil
}

func (r *UserRepository) ClearPayoutAccount(ctx context.Context, id uint) error {
	if err := r.dao.ClearPayoutAccount(ctx, id); err != nil {
		return fmt.Errorf("r.dao.ClearPayoutAccount -> %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	return dao.User{
		ID:               u.ID,
		Email:            u.Email,
		Password:         u.Password,
		Name:             u.Name,
		Currency:         u.Currency,
		StripeAccountID:  u.StripeAccountID,
		DetailsSubmitted: u.DetailsSubmitted,
		ChargesEnabled:   u.ChargesEnabled,
		PayoutsEnabled:   u.PayoutsEnabled,
		SetupComplete:    u.SetupComplete,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:               u.ID,
		Email:            u.Email,
		Password:         u.Password,
		Name:             u.Name,
		Currency:         u.Currency,
		StripeAccountID:  u.StripeAccountID,
		DetailsSubmitted: u.DetailsSubmitted,
		ChargesEnabled:   u.ChargesEnabled,
		PayoutsEnabled:   u.PayoutsEnabled,
		SetupComplete:    u.SetupComplete,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
