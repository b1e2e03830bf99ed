package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/repository"
)

var ErrCardNotFound = repository.ErrCardNotFound

type CardRepository interface {
	Save(ctx context.Context, card domain.Card) (domain.Card, error)
	FindByPaymentID(ctx context.Context, paymentID string) (domain.Card, error)
}

type CardService struct {
	repo CardRepository
}

func NewCardService(repo CardRepository) *CardService {
	return &CardService{
		repo: repo,
	}
}

func (s *CardService) SaveCard(ctx context.Context, card domain.Card) (domain.Card, error) {
	saved, err := s.repo.Save(ctx, card)
	if err != nil {
		return domain.Card{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return saved, nil
}

func (s *CardService) GetCard(ctx context.Context, paymentID string) (domain.Card, error) {
	card, err := s.repo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return domain.Card{}, ErrCardNotFound
		}

		return domain.Card{}, fmt.Errorf("s.repo.FindByPaymentID -> %w", err)
	}

	return card, nil
}
