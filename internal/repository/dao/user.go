package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	Currency string `gorm:"not null;default:USD"`

	StripeAccountID  string `gorm:"index"`
	DetailsSubmitted bool   `gorm:"not null;default:false"`
	ChargesEnabled   bool   `gorm:"not null;default:false"`
	PayoutsEnabled   bool   `gorm:"not null;default:false"`
	SetupComplete    bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "email") {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User
	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByStripeAccountID(ctx context.Context, accountID string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).Where("stripe_account_id = ?", accountID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) UpdateCurrency(ctx context.Context, id uint, currency string) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("currency", currency)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (d *UserDAO) SetStripeAccountID(ctx context.Context, id uint, accountID string) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("stripe_account_id", accountID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdatePayoutStatus stores the onboarding flags reported by the payment
// processor for the given connected account.
func (d *UserDAO) UpdatePayoutStatus(ctx context.Context, accountID string, detailsSubmitted, chargesEnabled, payoutsEnabled bool) error {
	updates := map[string]interface{}{
		"details_submitted": detailsSubmitted,
		"charges_enabled":   chargesEnabled,
		"payouts_enabled":   payoutsEnabled,
		"setup_complete":    detailsSubmitted && chargesEnabled && payoutsEnabled,
	}

	result := d.db.WithContext(ctx).Model(&User{}).
		Where("stripe_account_id = ?", accountID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ClearPayoutAccount resets payout linkage after the external account is
// deleted.
func (d *UserDAO) ClearPayoutAccount(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"stripe_account_id": "",
			"details_submitted": false,
			"charges_enabled":   false,
			"payouts_enabled":   false,
			"setup_complete":    false,
		})

	return result.Error
}

func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// isUniqueViolation matches both the translated gorm error (any driver) and
// the raw postgres error carrying the violated column in its message.
func isUniqueViolation(err error, column string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, column)
}
