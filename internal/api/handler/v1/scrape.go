package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/request"
	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/scrape"
)

type ProductScraper interface {
	Scrape(ctx context.Context, rawURL string) (scrape.Result, error)
}

type ScrapeHandler struct {
	scraper ProductScraper
}

func NewScrapeHandler(scraper ProductScraper) *ScrapeHandler {
	return &ScrapeHandler{
		scraper: scraper,
	}
}

// HandleScrape godoc
// @Summary      Extract product details from a URL
// @Tags         scrape
// @Produce      json
// @Param        request   body      request.ScrapeRequest true "request body"
// @Success      200      {object}   scrape.Result
// @Failure      400      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /scrape [post]
func (h *ScrapeHandler) HandleScrape(ctx *gin.Context) {
	req := request.ScrapeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.scraper.Scrape(ctx.Request.Context(), req.URL)
	if err != nil {
		// Unreachable pages and empty extractions are different failures
		// and the client renders them differently.
		switch {
		case errors.Is(err, scrape.ErrFetchFailed):
			response.RenderErr(ctx, response.ErrBadGateway(err))
		case errors.Is(err, scrape.ErrNothingExtracted):
			response.RenderErr(ctx, response.ErrUnprocessable(err))
		default:
			err = fmt.Errorf("v1.HandleScrape -> h.scraper.Scrape -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.OK(ctx, http.StatusOK, result)
}
