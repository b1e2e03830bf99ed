package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventSlugExists = errors.New("event slug already taken")
)

type Event struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`

	Name          string    `gorm:"not null"`
	Slug          string    `gorm:"uniqueIndex;not null"`
	Date          time.Time `gorm:"not null"`
	Description   string
	CoverImageURL string

	Wishes []Wish `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "slug") {
			return Event{}, ErrEventSlugExists
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event
	result := d.db.WithContext(ctx).Preload("Wishes").First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindBySlug(ctx context.Context, slug string) (Event, error) {
	var event Event
	result := d.db.WithContext(ctx).Preload("Wishes").Where("slug = ?", slug).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByUserID(ctx context.Context, userID uint) ([]Event, error) {
	var events []Event
	result := d.db.WithContext(ctx).Preload("Wishes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&Event{}).Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":            event.Name,
			"date":            event.Date,
			"description":     event.Description,
			"cover_image_url": event.CoverImageURL,
		})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

// Delete removes the event and then its wishes. Not atomic, matching the
// external-store behavior this replaces: a crash in between leaves orphan
// wishes, which the funding aggregation already tolerates.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return d.db.WithContext(ctx).Where("event_id = ?", id).Delete(&Wish{}).Error
}
