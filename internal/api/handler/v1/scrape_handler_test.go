package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/wishwell/wishwell-api/internal/api/handler/v1"
	"github.com/wishwell/wishwell-api/internal/scrape"
)

type stubScraper struct {
	result scrape.Result
	err    error
}

func (s *stubScraper) Scrape(_ context.Context, _ string) (scrape.Result, error) {
	return s.result, s.err
}

func scrapeRequest(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scrape",
		strings.NewReader(`{"url":"`+url+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func newScrapeRouter(scraper v1.ProductScraper) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/v1/scrape", v1.NewScrapeHandler(scraper).HandleScrape)

	return router
}

func TestHandleScrape(t *testing.T) {
	t.Run("extracted product comes back in the envelope", func(t *testing.T) {
		router := newScrapeRouter(&stubScraper{
			result: scrape.Result{Title: "Stand Mixer", Price: "449.99", Currency: "USD"},
		})

		w := scrapeRequest(t, router, "https://shop.example.com/mixer")

		require.Equal(t, http.StatusOK, w.Code)

		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("unreachable page is a bad gateway", func(t *testing.T) {
		router := newScrapeRouter(&stubScraper{err: scrape.ErrFetchFailed})

		w := scrapeRequest(t, router, "https://down.example.com/item")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("page with nothing extractable is unprocessable, not a gateway error", func(t *testing.T) {
		router := newScrapeRouter(&stubScraper{err: scrape.ErrNothingExtracted})

		w := scrapeRequest(t, router, "https://blog.example.com/post")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		router := newScrapeRouter(&stubScraper{})

		w := scrapeRequest(t, router, "not a url")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
