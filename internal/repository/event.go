package repository

import (
	"context"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

var (
	ErrEventNotFound   = dao.ErrEventNotFound
	ErrEventSlugExists = dao.ErrEventSlugExists
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindBySlug(ctx context.Context, slug string) (dao.Event, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Event, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	event, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(event), nil
}

func (r *EventRepository) FindBySlug(ctx context.Context, slug string) (domain.Event, error) {
	event, err := r.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(event), nil
}

func (r *EventRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Event, error) {
	events, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		out = append(out, r.daoToDomain(e))
	}

	return out, nil
}

func (r *EventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.dao.SlugExists(ctx, slug)
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, err
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:            e.ID,
		UserID:        e.UserID,
		Name:          e.Name,
		Slug:          e.Slug,
		Date:          e.Date,
		Description:   e.Description,
		CoverImageURL: e.CoverImageURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	wishes := make([]domain.Wish, 0, len(e.Wishes))
	for _, w := range e.Wishes {
		wishes = append(wishes, wishDaoToDomain(w))
	}

	return domain.Event{
		ID:            e.ID,
		UserID:        e.UserID,
		Name:          e.Name,
		Slug:          e.Slug,
		Date:          e.Date,
		Description:   e.Description,
		CoverImageURL: e.CoverImageURL,
		Wishes:        wishes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
