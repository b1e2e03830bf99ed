package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/currency"
)

type CurrencyConverter interface {
	ToUSD(ctx context.Context, amount float64, code string) (int64, error)
	Rate(ctx context.Context, code string) (float64, error)
}

type CurrencyHandler struct {
	converter CurrencyConverter
}

func NewCurrencyHandler(converter CurrencyConverter) *CurrencyHandler {
	return &CurrencyHandler{
		converter: converter,
	}
}

// HandleListCurrencies godoc
// @Summary      List convertible currency codes
// @Tags         currency
// @Produce      json
// @Success      200      {array}    string
// @Router       /currency/codes [get]
func (h *CurrencyHandler) HandleListCurrencies(ctx *gin.Context) {
	response.OK(ctx, http.StatusOK, currency.Codes())
}

// HandleConvert godoc
// @Summary      Convert an amount to whole USD
// @Tags         currency
// @Produce      json
// @Param        amount   query      number true "amount in the source currency"
// @Param        from     query      string true "source currency code"
// @Success      200
// @Failure      400      {object}   response.Err
// @Router       /currency/convert [get]
func (h *CurrencyHandler) HandleConvert(ctx *gin.Context) {
	amount, err := strconv.ParseFloat(ctx.Query("amount"), 64)
	if err != nil || amount <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("amount must be a positive number")))

		return
	}

	from := strings.ToUpper(ctx.Query("from"))
	if from == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("from is required")))

		return
	}

	usd, err := h.converter.ToUSD(ctx.Request.Context(), amount, from)
	if err != nil {
		if errors.Is(err, currency.ErrUnsupportedCurrency) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleConvert -> h.converter.ToUSD -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	rate, _ := h.converter.Rate(ctx.Request.Context(), from)

	response.OK(ctx, http.StatusOK, gin.H{
		"amount": amount,
		"from":   from,
		"rate":   rate,
		"usd":    usd,
	})
}
