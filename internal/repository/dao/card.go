package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("card not found")

type Card struct {
	ID        uint   `gorm:"primaryKey"`
	PaymentID string `gorm:"uniqueIndex;not null"`

	HTML               string `gorm:"type:text"`
	Text               string `gorm:"type:text"`
	BackgroundImageURL string
	OverlayImageURL    string

	CreatedAt time.Time `gorm:"not null"`
}

type CardDAO struct {
	db *gorm.DB
}

func NewCardDAO(db *gorm.DB) *CardDAO {
	return &CardDAO{
		db: db,
	}
}

// Upsert saves the snapshot for a payment, replacing any earlier one for the
// same payment id. Checkout retries can post the card twice; last write
// wins.
func (d *CardDAO) Upsert(ctx context.Context, card Card) (Card, error) {
	var existing Card
	err := d.db.WithContext(ctx).Where("payment_id = ?", card.PaymentID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err = d.db.WithContext(ctx).Create(&card).Error; err != nil {
			return Card{}, err
		}
		return card, nil

	case err != nil:
		return Card{}, err

	default:
		card.ID = existing.ID
		card.CreatedAt = existing.CreatedAt
		if err = d.db.WithContext(ctx).Save(&card).Error; err != nil {
			return Card{}, err
		}
		return card, nil
	}
}

func (d *CardDAO) FindByPaymentID(ctx context.Context, paymentID string) (Card, error) {
	var card Card
	result := d.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Card{}, ErrCardNotFound
		}

		return Card{}, result.Error
	}

	return card, nil
}
