// Package currency converts wish prices to whole US dollars using a cached
// snapshot of daily exchange rates.
package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// DefaultTTL is how long a fetched rate snapshot stays fresh.
const DefaultTTL = time.Hour

// fallbackRates are used only when the rate source is unreachable and no
// snapshot has been cached yet. Values are units of currency per USD.
var fallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.91,
	"GBP": 0.79,
	"CAD": 1.36,
	"AUD": 1.52,
	"NZD": 1.64,
	"SGD": 1.35,
	"JPY": 149.50,
	"CHF": 0.88,
	"SEK": 10.45,
}

// Snapshot is an immutable set of rates with its fetch time. The converter
// replaces the whole snapshot atomically, so concurrent refreshes can only
// race to install the same data.
type Snapshot struct {
	Rates     map[string]float64
	FetchedAt time.Time
}

// Converter fetches rates from a public source and caches them with a TTL.
// It is safe for concurrent use and degrades from live rates to the last
// good snapshot to the static fallback table, in that order.
type Converter struct {
	endpoint string
	ttl      time.Duration
	client   *http.Client
	now      func() time.Time

	mu   sync.RWMutex
	snap *Snapshot
}

func NewConverter(endpoint string, ttl time.Duration) *Converter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Converter{
		endpoint: endpoint,
		ttl:      ttl,
		client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
	}
}

// Supported reports whether a currency has a fallback rate, i.e. whether
// conversion can be guaranteed even with the rate source down.
func Supported(code string) bool {
	_, ok := fallbackRates[code]
	return ok
}

// Codes returns the guaranteed-convertible currency codes.
func Codes() []string {
	out := make([]string, 0, len(fallbackRates))
	for code := range fallbackRates {
		out = append(out, code)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

// Rate returns the units-of-currency-per-USD rate for code.
func (c *Converter) Rate(ctx context.Context, code string) (float64, error) {
	rates := c.rates(ctx)
	rate, ok := rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	return rate, nil
}

// ToUSD converts amount in the given currency to whole US dollars, rounding
// half away from zero. The conversion is a point-in-time snapshot; stored
// results are never re-validated against later rates.
func (c *Converter) ToUSD(ctx context.Context, amount float64, code string) (int64, error) {
	rate, err := c.Rate(ctx, code)
	if err != nil {
		return 0, err
	}

	usd := decimal.NewFromFloat(amount).
		Div(decimal.NewFromFloat(rate)).
		Round(0)

	return usd.IntPart(), nil
}

// rates returns the current snapshot, refreshing it when stale. Fetch
// failures fall back to the last good snapshot, then to the static table.
func (c *Converter) rates(ctx context.Context) map[string]float64 {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()

	if snap != nil && c.now().Sub(snap.FetchedAt) < c.ttl {
		return snap.Rates
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		if snap != nil {
			return snap.Rates
		}
		return fallbackRates
	}

	c.mu.Lock()
	c.snap = fresh
	c.mu.Unlock()

	return fresh.Rates
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *Converter) fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, errors.New("rate source returned no rates")
	}

	body.Rates["USD"] = 1

	return &Snapshot{Rates: body.Rates, FetchedAt: c.now()}, nil
}
