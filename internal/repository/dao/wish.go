package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrWishNotFound = errors.New("wish not found")

type Wish struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;index"`

	Title       string `gorm:"size:40;not null"`
	Description string `gorm:"size:200"`

	PriceUSD         int64   `gorm:"not null"`
	OriginalCurrency string  `gorm:"size:3;not null"`
	OriginalAmount   float64 `gorm:"not null"`

	ImageURL string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type WishDAO struct {
	db *gorm.DB
}

func NewWishDAO(db *gorm.DB) *WishDAO {
	return &WishDAO{
		db: db,
	}
}

func (d *WishDAO) Insert(ctx context.Context, wish Wish) (Wish, error) {
	result := d.db.WithContext(ctx).Create(&wish)
	if result.Error != nil {
		return Wish{}, result.Error
	}

	return wish, nil
}

func (d *WishDAO) FindByID(ctx context.Context, id uint) (Wish, error) {
	var wish Wish
	result := d.db.WithContext(ctx).First(&wish, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Wish{}, ErrWishNotFound
		}

		return Wish{}, result.Error
	}

	return wish, nil
}

func (d *WishDAO) FindByEventID(ctx context.Context, eventID uint) ([]Wish, error) {
	var wishes []Wish
	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&wishes)
	if result.Error != nil {
		return nil, result.Error
	}

	return wishes, nil
}

func (d *WishDAO) Update(ctx context.Context, wish Wish) (Wish, error) {
	result := d.db.WithContext(ctx).Model(&Wish{}).Where("id = ?", wish.ID).
		Updates(map[string]interface{}{
			"title":       wish.Title,
			"description": wish.Description,
			"image_url":   wish.ImageURL,
		})
	if result.Error != nil {
		return Wish{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Wish{}, ErrWishNotFound
	}

	return d.FindByID(ctx, wish.ID)
}

func (d *WishDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Wish{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWishNotFound
	}

	return nil
}
