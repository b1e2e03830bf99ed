package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/request"
	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/currency"
	"github.com/wishwell/wishwell-api/internal/domain"
	"github.com/wishwell/wishwell-api/internal/service"
)

type WishService interface {
	CreateWish(ctx context.Context, wish domain.Wish, userID uint) (domain.Wish, error)
	GetWish(ctx context.Context, wishID uint) (domain.Wish, error)
	ListWishes(ctx context.Context, eventID uint) ([]domain.Wish, error)
	UpdateWish(ctx context.Context, wish domain.Wish, userID uint) (domain.Wish, error)
	DeleteWish(ctx context.Context, wishID, userID uint) error
}

type WishHandler struct {
	svc WishService
}

func NewWishHandler(svc WishService) *WishHandler {
	return &WishHandler{
		svc: svc,
	}
}

// HandleCreateWish godoc
// @Summary      Add a wish to an event
// @Tags         wishes
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Param        request   body      request.CreateWishRequest true "request body"
// @Success      201      {object}   domain.Wish
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/wishes [post]
func (h *WishHandler) HandleCreateWish(ctx *gin.Context) {
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

	req := request.CreateWishRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	wish, err := h.svc.CreateWish(ctx.Request.Context(), domain.Wish{
		EventID:          eventID,
		Title:            req.Title,
		Description:      req.Description,
		OriginalAmount:   req.Price,
		OriginalCurrency: req.Currency,
		ImageURL:         req.ImageURL,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		case errors.Is(err, service.ErrTitleTooLong),
			errors.Is(err, service.ErrDescriptionTooLong),
			errors.Is(err, currency.ErrUnsupportedCurrency):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateWish -> h.svc.CreateWish -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.OK(ctx, http.StatusCreated, wish)
}

// HandleGetWish godoc
// @Summary      Get a wish
// @Tags         wishes
// @Produce      json
// @Param        wishID   path      int true "wish ID"
// @Success      200      {object}   domain.Wish
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /wishes/{wishID} [get]
func (h *WishHandler) HandleGetWish(ctx *gin.Context) {
	wishID, err := parseIDParam(ctx, "wishID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	wish, err := h.svc.GetWish(ctx.Request.Context(), wishID)
	if err != nil {
		if errors.Is(err, service.ErrWishNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("wish", "ID", wishID))

			return
		}

		err = fmt.Errorf("v1.HandleGetWish -> h.svc.GetWish -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, wish)
}

// HandleListWishes godoc
// @Summary      List an event's wishes
// @Tags         wishes
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200      {array}    domain.Wish
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/wishes [get]
func (h *WishHandler) HandleListWishes(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	wishes, err := h.svc.ListWishes(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListWishes -> h.svc.ListWishes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, http.StatusOK, wishes)
}

// HandleUpdateWish godoc
// @Summary      Update a wish (price is frozen)
// @Tags         wishes
// @Produce      json
// @Param        wishID   path      int true "wish ID"
// @Param        request   body      request.UpdateWishRequest true "request body"
// @Success      200      {object}   domain.Wish
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /wishes/{wishID} [put]
func (h *WishHandler) HandleUpdateWish(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	wishID, err := parseIDParam(ctx, "wishID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateWishRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	wish, err := h.svc.UpdateWish(ctx.Request.Context(), domain.Wish{
		ID:          wishID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWishNotFound):
			response.RenderErr(ctx, response.ErrNotFound("wish", "ID", wishID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		case errors.Is(err, service.ErrTitleTooLong), errors.Is(err, service.ErrDescriptionTooLong):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateWish -> h.svc.UpdateWish -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.OK(ctx, http.StatusOK, wish)
}

// HandleDeleteWish godoc
// @Summary      Delete a wish
// @Tags         wishes
// @Produce      json
// @Param        wishID   path      int true "wish ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /wishes/{wishID} [delete]
func (h *WishHandler) HandleDeleteWish(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	wishID, err := parseIDParam(ctx, "wishID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteWish(ctx.Request.Context(), wishID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrWishNotFound):
			response.RenderErr(ctx, response.ErrNotFound("wish", "ID", wishID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		default:
			err = fmt.Errorf("v1.HandleDeleteWish -> h.svc.DeleteWish -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
