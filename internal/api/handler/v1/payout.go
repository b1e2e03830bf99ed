package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v72"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/request"
	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/bankformat"
	"github.com/wishwell/wishwell-api/internal/service"
)

const defaultPayoutsLimit = 10

type PayoutService interface {
	SupportedCountries() []bankformat.Country
	CreateAccount(ctx context.Context, userID uint, p service.CreateAccountParams) (string, error)
	Status(ctx context.Context, userID uint) (service.PayoutStatus, error)
	Balance(ctx context.Context, userID uint) (*stripe.Balance, error)
	ListPayouts(ctx context.Context, userID uint, limit int64) ([]*stripe.Payout, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type PayoutHandler struct {
	svc PayoutService
}

func NewPayoutHandler(svc PayoutService) *PayoutHandler {
	return &PayoutHandler{
		svc: svc,
	}
}

// HandleListCountries godoc
// @Summary      List supported payout countries and their bank field schemas
// @Tags         payout
// @Produce      json
// @Success      200      {array}    bankformat.Country
// @Router       /payout/countries [get]
func (h *PayoutHandler) HandleListCountries(ctx *gin.Context) {
	response.OK(ctx, http.StatusOK, h.svc.SupportedCountries())
}

// HandleCreateAccount godoc
// @Summary      Create a payout account and return the onboarding link
// @Tags         payout
// @Produce      json
// @Param        request   body      request.CreatePayoutAccountRequest true "request body"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payout/account [post]
func (h *PayoutHandler) HandleCreateAccount(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	req := request.CreatePayoutAccountRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	link, err := h.svc.CreateAccount(ctx.Request.Context(), userID, service.CreateAccountParams{
		Country:     req.Country,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		BankDetails: req.BankDetails,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedCountry),
			errors.Is(err, service.ErrMissingBankField),
			errors.Is(err, service.ErrPayoutAccountExists):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateAccount -> h.svc.CreateAccount -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.OK(ctx, http.StatusCreated, gin.H{"onboarding_url": link})
}

// HandleGetStatus godoc
// @Summary      Get payout onboarding status
// @Tags         payout
// @Produce      json
// @Success      200      {object}   service.PayoutStatus
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payout/status [get]
func (h *PayoutHandler) HandleGetStatus(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	status, err := h.svc.Status(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoPayoutAccount) {
			response.RenderErr(ctx, response.ErrNotFound("payout account", "user ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetStatus -> h.svc.Status -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, status)
}

// HandleGetBalance godoc
// @Summary      Get the payout account balance
// @Tags         payout
// @Produce      json
// @Success      200
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payout/balance [get]
func (h *PayoutHandler) HandleGetBalance(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	balance, err := h.svc.Balance(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoPayoutAccount) {
			response.RenderErr(ctx, response.ErrNotFound("payout account", "user ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetBalance -> h.svc.Balance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, balance)
}

// HandleListPayouts godoc
// @Summary      List recent payouts
// @Tags         payout
// @Produce      json
// @Param        limit   query      int false "max results"
// @Success      200
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payout/payouts [get]
func (h *PayoutHandler) HandleListPayouts(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	limit := int64(defaultPayoutsLimit)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 100 {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("limit must be between 1 and 100")))

			return
		}
		limit = parsed
	}

	payouts, err := h.svc.ListPayouts(ctx.Request.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, service.ErrNoPayoutAccount) {
			response.RenderErr(ctx, response.ErrNotFound("payout account", "user ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleListPayouts -> h.svc.ListPayouts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, payouts)
}

// HandleDeleteAccount godoc
// @Summary      Delete the payout account
// @Tags         payout
// @Produce      json
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payout/account [delete]
func (h *PayoutHandler) HandleDeleteAccount(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	if err = h.svc.DeleteAccount(ctx.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrNoPayoutAccount) {
			response.RenderErr(ctx, response.ErrNotFound("payout account", "user ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAccount -> h.svc.DeleteAccount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
