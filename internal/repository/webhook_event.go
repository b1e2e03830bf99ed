package repository

import (
	"context"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

type WebhookEventDAO interface {
	Insert(ctx context.Context, event dao.WebhookEvent) error
}

type WebhookEventRepository struct {
	dao WebhookEventDAO
}

func NewWebhookEventRepository(dao WebhookEventDAO) *WebhookEventRepository {
	return &WebhookEventRepository{
		dao: dao,
	}
}

// Record stores a verified processor event and whatever processing error it
// produced. processErr may be nil.
func (r *WebhookEventRepository) Record(ctx context.Context, eventID, eventType, payload string, processErr error) error {
	event := dao.WebhookEvent{
		StripeEventID: eventID,
		Type:          eventType,
		Payload:       payload,
	}
	if processErr != nil {
		event.ProcessError = processErr.Error()
	}

	if err := r.dao.Insert(ctx, event); err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}
