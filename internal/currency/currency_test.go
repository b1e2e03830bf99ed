package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("USD"))
	assert.True(t, Supported("EUR"))
	assert.False(t, Supported("XYZ"))
}

func TestCodes(t *testing.T) {
	codes := Codes()

	require.NotEmpty(t, codes)
	assert.Contains(t, codes, "USD")
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
}

func TestToUSD_FallbackTable(t *testing.T) {
	// No server to reach and no cached snapshot, so the static table applies:
	// 100 EUR at 0.91 EUR/USD is 109.89, rounded to 110.
	c := NewConverter("http://127.0.0.1:0/rates", time.Hour)

	usd, err := c.ToUSD(context.Background(), 100, "EUR")

	require.NoError(t, err)
	assert.Equal(t, int64(110), usd)
}

func TestToUSD_UnsupportedCurrency(t *testing.T) {
	c := NewConverter("http://127.0.0.1:0/rates", time.Hour)

	_, err := c.ToUSD(context.Background(), 100, "XYZ")

	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestToUSD_RoundsHalfUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":2}}`))
	}))
	defer srv.Close()

	c := NewConverter(srv.URL, time.Hour)

	usd, err := c.ToUSD(context.Background(), 3, "EUR")

	require.NoError(t, err)
	assert.Equal(t, int64(2), usd, "3 EUR at 2 EUR/USD is 1.5, which rounds up")
}

func TestToUSD_UsesFetchedRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.5,"GBP":0.8}}`))
	}))
	defer srv.Close()

	c := NewConverter(srv.URL, time.Hour)

	usd, err := c.ToUSD(context.Background(), 100, "EUR")

	require.NoError(t, err)
	assert.Equal(t, int64(200), usd)

	// USD is always injected with rate 1.
	usd, err = c.ToUSD(context.Background(), 42, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(42), usd)
}

func TestToUSD_StaleSnapshotBeatsFallback(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.5}}`))
	}))
	defer srv.Close()

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewConverter(srv.URL, time.Hour)
	c.now = func() time.Time { return clock }

	usd, err := c.ToUSD(context.Background(), 100, "EUR")
	require.NoError(t, err)
	require.Equal(t, int64(200), usd)

	// Snapshot expires, the refetch fails, the last good snapshot still
	// answers instead of the 0.91 fallback.
	clock = clock.Add(2 * time.Hour)

	usd, err = c.ToUSD(context.Background(), 100, "EUR")
	require.NoError(t, err)
	assert.Equal(t, int64(200), usd)
	assert.Equal(t, 2, calls)
}

func TestToUSD_CachedWithinTTL(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.5}}`))
	}))
	defer srv.Close()

	c := NewConverter(srv.URL, time.Hour)

	for i := 0; i < 5; i++ {
		_, err := c.ToUSD(context.Background(), 10, "EUR")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls)
}
