package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/request"
	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/service"
)

type CardService interface {
	SaveCard(ctx context.Context, card domain.Card) (domain.Card, error)
	GetCard(ctx context.Context, paymentID string) (domain.Card, error)
}

type CardHandler struct {
	svc CardService
}

func NewCardHandler(svc CardService) *CardHandler {
	return &CardHandler{
		svc: svc,
	}
}

// HandleSaveCard godoc
// @Summary      Save a greeting card for a payment
// @Tags         cards
// @Produce      json
// @Param        request   body      request.SaveCardRequest true "request body"
// @Success      201      {object}   domain.Card
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cards [post]
func (h *CardHandler) HandleSaveCard(ctx *gin.Context) {
	req := request.SaveCardRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	card, err := h.svc.SaveCard(ctx.Request.Context(), domain.Card{
		PaymentID:          req.PaymentID,
		HTML:               req.HTML,
		Text:               req.Text,
		BackgroundImageURL: req.BackgroundImageURL,
		OverlayImageURL:    req.OverlayImageURL,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleSaveCard -> h.svc.SaveCard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusCreated, card)
}

// HandleGetCard godoc
// @Summary      Get the greeting card for a payment
// @Tags         cards
// @Produce      json
// @Param        paymentID   path      string true "payment ID"
// @Success      200      {object}   domain.Card
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cards/{paymentID} [get]
func (h *CardHandler) HandleGetCard(ctx *gin.Context) {
	paymentID := ctx.Param("paymentID")

	card, err := h.svc.GetCard(ctx.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, service.ErrCardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("card", "payment ID", paymentID))

			return
		}

		err = fmt.Errorf("v1.HandleGetCard -> h.svc.GetCard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, card)
}
