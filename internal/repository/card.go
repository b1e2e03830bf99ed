package repository

import (
	"context"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

var ErrCardNotFound = dao.ErrCardNotFound

type CardDAO interface {
	Upsert(ctx context.Context, card dao.Card) (dao.Card, error)
	FindByPaymentID(ctx context.Context, paymentID string) (dao.Card, error)
}

type CardRepository struct {
	dao CardDAO
}

func NewCardRepository(dao CardDAO) *CardRepository {
	return &CardRepository{
		dao: dao,
	}
}

func (r *CardRepository) Save(ctx context.Context, card domain.Card) (domain.Card, error) {
	saved, err := r.dao.Upsert(ctx, dao.Card{
		ID:                 card.ID,
		PaymentID:          card.PaymentID,
		HTML:               card.HTML,
		Text:               card.Text,
		BackgroundImageURL: card.BackgroundImageURL,
		OverlayImageURL:    card.OverlayImageURL,
		CreatedAt:          card.CreatedAt,
	})
	if err != nil {
		return domain.Card{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *CardRepository) FindByPaymentID(ctx context.Context, paymentID string) (domain.Card, error) {
	card, err := r.dao.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return domain.Card{}, err
	}

	return r.daoToDomain(card), nil
}

func (r *CardRepository) daoToDomain(c dao.Card) domain.Card {
	return domain.Card{
		ID:                 c.ID,
		PaymentID:          c.PaymentID,
		HTML:               c.HTML,
		Text:               c.Text,
		BackgroundImageURL: c.BackgroundImageURL,
		OverlayImageURL:    c.OverlayImageURL,
		CreatedAt:          c.CreatedAt,
	}
}
