package repository

import (
	"context"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

var ErrWishNotFound = dao.ErrWishNotFound

type WishDAO interface {
	Insert(ctx context.Context, wish dao.Wish) (dao.Wish, error)
	FindByID(ctx context.Context, id uint) (dao.Wish, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Wish, error)
	Update(ctx context.Context, wish dao.Wish) (dao.Wish, error)
	Delete(ctx context.Context, id uint) error
}

type WishRepository struct {
	dao WishDAO
}

func NewWishRepository(dao WishDAO) *WishRepository {
	return &WishRepository{
		dao: dao,
	}
}

func (r *WishRepository) Create(ctx context.Context, wish domain.Wish) (domain.Wish, error) {
	created, err := r.dao.Insert(ctx, wishDomainToDao(wish))
	if err != nil {
		return domain.Wish{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return wishDaoToDomain(created), nil
}

func (r *WishRepository) FindByID(ctx context.Context, id uint) (domain.Wish, error) {
	wish, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Wish{}, err
	}

	return wishDaoToDomain(wish), nil
}

func (r *WishRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Wish, error) {
	wishes, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	out := make([]domain.Wish, 0, len(wishes))
	for _, w := range wishes {
		out = append(out, wishDaoToDomain(w))
	}

	return out, nil
}

func (r *WishRepository) Update(ctx context.Context, wish domain.Wish) (domain.Wish, error) {
	updated, err := r.dao.Update(ctx, wishDomainToDao(wish))
	if err != nil {
		return domain.Wish{}, err
	}

	return wishDaoToDomain(updated), nil
}

func (r *WishRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func wishDomainToDao(w domain.Wish) dao.Wish {
	return dao.Wish{
		ID:               w.ID,
		EventID:          w.EventID,
		Title:            w.Title,
		Description:      w.Description,
		PriceUSD:         w.PriceUSD,
		OriginalCurrency: w.OriginalCurrency,
		OriginalAmount:   w.OriginalAmount,
		ImageURL:         w.ImageURL,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func wishDaoToDomain(w dao.Wish) domain.Wish {
	return domain.Wish{
		ID:               w.ID,
		EventID:          w.EventID,
		Title:            w.Title,
		Description:      w.Description,
		PriceUSD:         w.PriceUSD,
		OriginalCurrency: w.OriginalCurrency,
		OriginalAmount:   w.OriginalAmount,
		ImageURL:         w.ImageURL,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}
