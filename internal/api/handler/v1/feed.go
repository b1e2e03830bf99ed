package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/service"
	"github.com/wishwell/wishwell-api/internal/ws"
)

type FeedEventService interface {
	IsOwner(ctx context.Context, eventID, userID uint) (bool, error)
}

type FeedHandler struct {
	events   FeedEventService
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewFeedHandler(events FeedEventService, hub *ws.Hub) *FeedHandler {
	return &FeedHandler{
		events: events,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin is enforced by the CORS middleware upstream.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleFeed godoc
// @Summary      Subscribe to live contribution alerts for an event
// @Tags         feed
// @Param        eventID   path      int true "event ID"
// @Success      101
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/feed [get]
func (h *FeedHandler) HandleFeed(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	owner, err := h.events.IsOwner(ctx.Request.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleFeed -> h.events.IsOwner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}
	if !owner {
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))

		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}

	ws.NewClient(h.hub, conn, eventID).Start()
}
