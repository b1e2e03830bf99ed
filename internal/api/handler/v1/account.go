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

type AccountService interface {
	GetAccount(ctx context.Context, userID uint) (domain.User, error)
	UpdateCurrency(ctx context.Context, userID uint, code string) error
	DeleteAccount(ctx context.Context, userID uint) error
}

type AccountHandler struct {
	svc AccountService
}

func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{
		svc: svc,
	}
}

// HandleGetAccount godoc
// @Summary      Get the current account
// @Tags         account
// @Produce      json
// @Success      200      {object}   domain.User
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /account [get]
func (h *AccountHandler) HandleGetAccount(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	user, err := h.svc.GetAccount(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAccount -> h.svc.GetAccount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, user)
}

// HandleUpdateCurrency godoc
// @Summary      Update the preferred currency
// @Tags         account
// @Produce      json
// @Param        request   body      request.UpdateCurrencyRequest true "request body"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /account/currency [put]
func (h *AccountHandler) HandleUpdateCurrency(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	req := request.UpdateCurrencyRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.UpdateCurrency(ctx.Request.Context(), userID, req.Currency); err != nil {
		if errors.Is(err, service.ErrUnsupportedCurrency) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCurrency -> h.svc.UpdateCurrency -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"currency": req.Currency})
}

// HandleDeleteAccount godoc
// @Summary      Delete the current account
// @Tags         account
// @Produce      json
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /account [delete]
func (h *AccountHandler) HandleDeleteAccount(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	if err = h.svc.DeleteAccount(ctx.Request.Context(), userID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteAccount -> h.svc.DeleteAccount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
