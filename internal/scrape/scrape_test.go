package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestScrape_OpenGraphPage(t *testing.T) {
	srv := serve(t, `<html><head>
		<meta property="og:title" content="Cast Iron Dutch Oven, 5.5 Quart">
		<meta property="og:description" content="Enamelled cast iron for slow cooking.">
		<meta property="og:image" content="https://img.example.com/oven.jpg">
		<meta property="product:price:amount" content="349.99">
		<meta property="product:price:currency" content="USD">
	</head><body></body></html>`)

	res, err := NewScraper().Scrape(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Cast Iron Dutch Oven, 5.5 Quart", res.Title)
	assert.Equal(t, "Enamelled cast iron for slow cooking.", res.Description)
	assert.Equal(t, "349.99", res.Price)
	assert.Equal(t, "https://img.example.com/oven.jpg", res.ImageURL)
}

func TestScrape_FallsBackToHeadingAndPriceClass(t *testing.T) {
	srv := serve(t, `<html><body>
		<h1>Walnut Chess Set</h1>
		<div class="price">£89.50</div>
	</body></html>`)

	res, err := NewScraper().Scrape(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Walnut Chess Set", res.Title)
	assert.Equal(t, "89.50", res.Price)
	assert.Equal(t, "GBP", res.Currency, "currency inferred from the £ symbol")
}

func TestScrape_TruncatesLongTitle(t *testing.T) {
	srv := serve(t, `<html><head>
		<meta property="og:title" content="An Extremely Long Product Title That Goes On And On Well Past The Limit">
	</head><body></body></html>`)

	res, err := NewScraper().Scrape(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(res.Title)), 40)
}

func TestScrape_NothingExtracted(t *testing.T) {
	srv := serve(t, `<html><body><p>just some prose, no product here</p></body></html>`)

	_, err := NewScraper().Scrape(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrNothingExtracted)
}

func TestScrape_FetchFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		_, err := NewScraper().Scrape(context.Background(), srv.URL)

		assert.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := NewScraper().Scrape(context.Background(), url)

		assert.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewScraper().Scrape(context.Background(), "not-a-url")

		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}

func TestInferCurrency(t *testing.T) {
	tests := []struct {
		host  string
		price string
		want  string
	}{
		{"www.amazon.co.uk", "", "GBP"},
		{"www.amazon.de", "", "EUR"},
		{"shop.example.com.au", "", "AUD"},
		{"www.example.com", "€49.99", "EUR"},
		{"www.example.com", "$49.99", "USD"},
		{"www.example.com", "49.99", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inferCurrency(tt.host, tt.price), "host=%s price=%s", tt.host, tt.price)
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,299.99", "1299.99"},
		{"1.299,99", "1299.99"},
		{"€ 49,95", "49.95"},
		{"£89.50", "89.50"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePrice(tt.in), "input=%q", tt.in)
	}
}
