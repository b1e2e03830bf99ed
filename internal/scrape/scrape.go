// Package scrape extracts best-effort product details from arbitrary
// e-commerce pages. Known retailers get dedicated selectors; everything else
// goes through a ranked list of generic patterns. This is a heuristic, not a
// parser with a site contract: partial results are expected.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wishwell/wishwell-api/internal/pkg/textutil"
)

var (
	// ErrFetchFailed means the page could not be retrieved or parsed at all.
	ErrFetchFailed = errors.New("could not fetch product page")
	// ErrNothingExtracted means the page loaded but neither a title nor a
	// price was found.
	ErrNothingExtracted = errors.New("could not extract product details")
)

// Result is the extracted product data. Any field may be empty except that
// at least one of Title and Price is set.
type Result struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Currency    string `json:"currency,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Scraper struct {
	client *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Scrape fetches rawURL and extracts product details. Network and parse
// failures wrap ErrFetchFailed; a loaded page yielding neither title nor
// price returns ErrNothingExtracted, so the two cases stay distinguishable
// for the caller.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Result{}, fmt.Errorf("%w: invalid url %q", ErrFetchFailed, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	// Some retailers serve a bot-wall without a browser-ish UA.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	host := strings.ToLower(u.Hostname())

	var res Result
	if extract := retailerExtractor(host); extract != nil {
		res = extract(doc)
	}
	res = mergeResults(res, extractGeneric(doc))

	if res.Currency == "" {
		res.Currency = inferCurrency(host, res.Price)
	}
	res.Price = normalizePrice(res.Price)
	res.Title = textutil.TruncateTitle(res.Title)
	res.Description = textutil.TruncateDescription(res.Description)

	if res.Title == "" && res.Price == "" {
		return Result{}, ErrNothingExtracted
	}

	return res, nil
}

// mergeResults fills empty fields of primary from fallback.
func mergeResults(primary, fallback Result) Result {
	if primary.Title == "" {
		primary.Title = fallback.Title
	}
	if primary.Description == "" {
		primary.Description = fallback.Description
	}
	if primary.Price == "" {
		primary.Price = fallback.Price
	}
	if primary.Currency == "" {
		primary.Currency = fallback.Currency
	}
	if primary.ImageURL == "" {
		primary.ImageURL = fallback.ImageURL
	}

	return primary
}
