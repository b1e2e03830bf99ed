package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/pkg/textutil"
	"github.com/wishwell/wishwell-api/internal/repository"
)

var (
	ErrWishNotFound = repository.ErrWishNotFound

	ErrTitleTooLong       = fmt.Errorf("title exceeds %d characters", textutil.TitleLimit)
	ErrDescriptionTooLong = fmt.Errorf("description exceeds %d characters", textutil.DescriptionLimit)
)

type WishRepository interface {
	Create(ctx context.Context, wish domain.Wish) (domain.Wish, error)
	FindByID(ctx context.Context, id uint) (domain.Wish, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Wish, error)
	Update(ctx context.Context, wish domain.Wish) (domain.Wish, error)
	Delete(ctx context.Context, id uint) error
}

// WishConverter freezes the wish price in USD at creation time.
type WishConverter interface {
	ToUSD(ctx context.Context, amount float64, code string) (int64, error)
}

type WishService struct {
	repo      WishRepository
	events    EventRepository
	converter WishConverter
}

func NewWishService(repo WishRepository, events EventRepository, converter WishConverter) *WishService {
	return &WishService{
		repo:      repo,
		events:    events,
		converter: converter,
	}
}

// CreateWish converts the target price to whole USD using the current rate
// snapshot. The stored USD goal is never re-validated against later rates.
// Over-limit text typed by the user is an error, not a silent truncation;
// truncation is only for scraped prefills, which happens before this point.
func (s *WishService) CreateWish(ctx context.Context, wish domain.Wish, userID uint) (domain.Wish, error) {
	if err := s.checkOwnership(ctx, wish.EventID, userID); err != nil {
		return domain.Wish{}, err
	}
	if err := validateWishText(wish); err != nil {
		return domain.Wish{}, err
	}

	priceUSD, err := s.converter.ToUSD(ctx, wish.OriginalAmount, wish.OriginalCurrency)
	if err != nil {
		return domain.Wish{}, err
	}
	wish.PriceUSD = priceUSD

	created, err := s.repo.Create(ctx, wish)
	if err != nil {
		return domain.Wish{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *WishService) GetWish(ctx context.Context, wishID uint) (domain.Wish, error) {
	wish, err := s.repo.FindByID(ctx, wishID)
	if err != nil {
		if errors.Is(err, repository.ErrWishNotFound) {
			return domain.Wish{}, ErrWishNotFound
		}

		return domain.Wish{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return wish, nil
}

func (s *WishService) ListWishes(ctx context.Context, eventID uint) ([]domain.Wish, error) {
	wishes, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return wishes, nil
}

// UpdateWish edits title, description and image in place. The price is
// frozen; re-pricing a wish means deleting and recreating it.
func (s *WishService) UpdateWish(ctx context.Context, wish domain.Wish, userID uint) (domain.Wish, error) {
	existing, err := s.GetWish(ctx, wish.ID)
	if err != nil {
		return domain.Wish{}, err
	}
	if err = s.checkOwnership(ctx, existing.EventID, userID); err != nil {
		return domain.Wish{}, err
	}
	if err = validateWishText(wish); err != nil {
		return domain.Wish{}, err
	}

	wish.EventID = existing.EventID
	updated, err := s.repo.Update(ctx, wish)
	if err != nil {
		return domain.Wish{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *WishService) DeleteWish(ctx context.Context, wishID, userID uint) error {
	existing, err := s.GetWish(ctx, wishID)
	if err != nil {
		return err
	}
	if err = s.checkOwnership(ctx, existing.EventID, userID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, wishID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *WishService) checkOwnership(ctx context.Context, eventID, userID uint) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("s.events.FindByID -> %w", err)
	}
	if event.UserID != userID {
		return ErrNotEventOwner
	}

	return nil
}

func validateWishText(wish domain.Wish) error {
	if len([]rune(wish.Title)) > textutil.TitleLimit {
		return ErrTitleTooLong
	}
	if len([]rune(wish.Description)) > textutil.DescriptionLimit {
		return ErrDescriptionTooLong
	}

	return nil
}
