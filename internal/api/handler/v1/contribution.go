package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/request"
	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/funding"
	"github.com/wishwell/wishwell-api/internal/service"
)

type ContributionService interface {
	CreateIntent(ctx context.Context, wishID uint, amountCents int64, senderName string) (service.Checkout, error)
	ListByEvent(ctx context.Context, eventID uint) ([]domain.Contribution, error)
	ListByWish(ctx context.Context, wishID uint) ([]domain.Contribution, error)
	Funding(ctx context.Context, eventID uint) (funding.Result, error)
}

type ContributionCardService interface {
	SaveCard(ctx context.Context, card domain.Card) (domain.Card, error)
}

type ContributionHandler struct {
	svc   ContributionService
	cards ContributionCardService
}

func NewContributionHandler(svc ContributionService, cards ContributionCardService) *ContributionHandler {
	return &ContributionHandler{
		svc:   svc,
		cards: cards,
	}
}

// HandleCreateIntent godoc
// @Summary      Open a payment intent for a contribution
// @Tags         contributions
// @Produce      json
// @Param        request   body      request.CreateIntentRequest true "request body"
// @Success      201      {object}   service.Checkout
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /contributions/intent [post]
func (h *ContributionHandler) HandleCreateIntent(ctx *gin.Context) {
	req := request.CreateIntentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	amountCents := decimal.NewFromFloat(req.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	checkout, err := h.svc.CreateIntent(ctx.Request.Context(), req.WishID, amountCents, req.SenderName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWishNotFound):
			response.RenderErr(ctx, response.ErrNotFound("wish", "ID", req.WishID))
		case errors.Is(err, service.ErrPayoutNotReady):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPayoutNotReady))
		default:
			err = fmt.Errorf("v1.HandleCreateIntent -> h.svc.CreateIntent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	if req.Card != nil {
		// The card is decoration; losing it never fails the payment.
		_, err = h.cards.SaveCard(ctx.Request.Context(), domain.Card{
			PaymentID:          checkout.PaymentID,
			HTML:               req.Card.HTML,
			Text:               req.Card.Text,
			BackgroundImageURL: req.Card.BackgroundImageURL,
			OverlayImageURL:    req.Card.OverlayImageURL,
		})
		if err != nil {
			zap.L().Error("failed to save greeting card",
				zap.String("payment_id", checkout.PaymentID),
				zap.Error(err),
			)
		}
	}

	response.OK(ctx, http.StatusCreated, checkout)
}

// HandleListEventContributions godoc
// @Summary      List an event's successful contributions
// @Tags         contributions
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200      {array}    domain.Contribution
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/contributions [get]
func (h *ContributionHandler) HandleListEventContributions(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contributions, err := h.svc.ListByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEventContributions -> h.svc.ListByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, contributions)
}

// HandleListWishContributions godoc
// @Summary      List a wish's successful contributions
// @Tags         contributions
// @Produce      json
// @Param        wishID   path      int true "wish ID"
// @Success      200      {array}    domain.Contribution
// @Failure      500      {object}   response.Err
// @Router       /wishes/{wishID}/contributions [get]
func (h *ContributionHandler) HandleListWishContributions(ctx *gin.Context) {
	wishID, err := parseIDParam(ctx, "wishID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contributions, err := h.svc.ListByWish(ctx.Request.Context(), wishID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListWishContributions -> h.svc.ListByWish -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, contributions)
}

// HandleGetFunding godoc
// @Summary      Get per-wish funding totals for an event
// @Tags         contributions
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200      {object}   funding.Result
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/funding [get]
func (h *ContributionHandler) HandleGetFunding(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.Funding(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleGetFunding -> h.svc.Funding -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, result)
}
