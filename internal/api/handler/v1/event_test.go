package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/wishwell/wishwell-api/internal/api/handler/v1"
	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/service"
)

type stubEventService struct {
	events map[string]domain.Event
}

func (s *stubEventService) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventService) GetEvent(_ context.Context, _ uint) (domain.Event, error) {
	return domain.Event{}, service.ErrEventNotFound
}

func (s *stubEventService) GetEventBySlug(_ context.Context, slug string) (domain.Event, error) {
	event, ok := s.events[slug]
	if !ok {
		return domain.Event{}, service.ErrEventNotFound
	}

	return event, nil
}

func (s *stubEventService) ListEvents(_ context.Context, _ uint) ([]domain.Event, error) {
	return nil, nil
}

func (s *stubEventService) SlugAvailable(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (s *stubEventService) UpdateEvent(_ context.Context, event domain.Event, _ uint) (domain.Event, error) {
	return event, nil
}

func (s *stubEventService) DeleteEvent(_ context.Context, _, _ uint) error {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newEventRouter(svc v1.EventService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := v1.NewEventHandler(svc)
	router.GET("/api/v1/events/slug/:slug", handler.HandleGetEventBySlug)

	return router
}

func TestHandleGetEventBySlug(t *testing.T) {
	router := newEventRouter(&stubEventService{
		events: map[string]domain.Event{
			"sarahs-wedding": {ID: 1, UserID: 1, Name: "Sarah's Wedding!", Slug: "sarahs-wedding"},
		},
	})

	t.Run("known slug returns the event in the success envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/slug/sarahs-wedding", nil)

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)

		var event domain.Event
		require.NoError(t, json.Unmarshal(body.Data, &event))
		assert.Equal(t, "Sarah's Wedding!", event.Name)
	})

	t.Run("unknown slug returns 404 with the failure envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/slug/nope", nil)

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}
