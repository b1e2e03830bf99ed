package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/pkg/slugify"
	"github.com/wishwell/wishwell-api/internal/repository"
)

var (
	ErrEventNotFound = repository.ErrEventNotFound
	ErrSlugTaken     = repository.ErrEventSlugExists
	ErrNotEventOwner = errors.New("event belongs to another user")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindBySlug(ctx context.Context, slug string) (domain.Event, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Event, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// CreateEvent derives the slug from the event name. Uniqueness is enforced
// by the database; a pre-submit availability check never substitutes for the
// insert-time guarantee.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Slug = slugify.Make(event.Name)

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		if errors.Is(err, repository.ErrEventSlugExists) {
			return domain.Event{}, ErrSlugTaken
		}

		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// GetEventBySlug serves the public event page; no ownership check.
func (s *EventService) GetEventBySlug(ctx context.Context, slug string) (domain.Event, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindBySlug -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, userID uint) ([]domain.Event, error) {
	events, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return events, nil
}

// SlugAvailable reports whether the slug derived from name is still free.
func (s *EventService) SlugAvailable(ctx context.Context, name string) (string, bool, error) {
	slug := slugify.Make(name)
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return "", false, fmt.Errorf("s.repo.SlugExists -> %w", err)
	}

	return slug, !exists, nil
}

// UpdateEvent updates mutable fields. The slug is frozen at creation; public
// links must not break when an event is renamed.
func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event, userID uint) (domain.Event, error) {
	existing, err := s.GetEvent(ctx, event.ID)
	if err != nil {
		return domain.Event{}, err
	}
	if existing.UserID != userID {
		return domain.Event{}, ErrNotEventOwner
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID, userID uint) error {
	existing, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotEventOwner
	}

	if err = s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// IsOwner reports whether the user owns the event.
func (s *EventService) IsOwner(ctx context.Context, eventID, userID uint) (bool, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}

	return event.UserID == userID, nil
}
