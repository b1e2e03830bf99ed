package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// WebhookEvent records every verified processor event together with any
// processing failure, so failed events can be replayed by hand. The webhook
// route acknowledges regardless; this row is the audit trail.
type WebhookEvent struct {
	ID            uint   `gorm:"primaryKey"`
	StripeEventID string `gorm:"uniqueIndex;not null"`
	Type          string `gorm:"not null;index"`
	Payload       string `gorm:"type:text"`
	ProcessError  string

	CreatedAt time.Time `gorm:"not null"`
}

type WebhookEventDAO struct {
	db *gorm.DB
}

func NewWebhookEventDAO(db *gorm.DB) *WebhookEventDAO {
	return &WebhookEventDAO{
		db: db,
	}
}

func (d *WebhookEventDAO) Insert(ctx context.Context, event WebhookEvent) error {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		// Redelivered events collide on the unique event id; that is not a
		// failure worth surfacing to the sender.
		if isUniqueViolation(result.Error, "stripe_event_id") {
			return nil
		}

		return result.Error
	}

	return nil
}
