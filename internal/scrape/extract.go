package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dlclark/regexp2"
)

// priceRe matches a currency-symbol-prefixed or -suffixed amount. The
// lookbehind/lookahead keep it from matching the tail of a longer number
// (SKU fragments, phone numbers), which plain regexp can't express.
var priceRe = regexp2.MustCompile(
	`(?<![\d.,])(?:[$€£]\s?\d{1,3}(?:[,.\s]\d{3})*(?:[.,]\d{2})?|\d{1,3}(?:[,.\s]\d{3})*(?:[.,]\d{2})?\s?[$€£])(?![\d])`,
	regexp2.None,
)

type extractorFunc func(doc *goquery.Document) Result

// retailerExtractor returns a site-specific extractor for hosts we know, or
// nil to go straight to the generic pass.
func retailerExtractor(host string) extractorFunc {
	switch {
	case strings.Contains(host, "amazon."):
		return extractAmazon
	case strings.Contains(host, "etsy."):
		return extractEtsy
	case strings.Contains(host, "ebay."):
		return extractEbay
	default:
		return nil
	}
}

func extractAmazon(doc *goquery.Document) Result {
	res := Result{
		Title:    text(doc, "#productTitle"),
		ImageURL: attr(doc, "#landingImage", "src"),
	}

	for _, sel := range []string{
		".a-price .a-offscreen",
		"#priceblock_ourprice",
		"#priceblock_dealprice",
		"#corePrice_feature_div .a-offscreen",
	} {
		if res.Price = text(doc, sel); res.Price != "" {
			break
		}
	}

	res.Description = text(doc, "#feature-bullets .a-list-item")

	return res
}

func extractEtsy(doc *goquery.Document) Result {
	return Result{
		Title:       text(doc, "h1[data-buy-box-listing-title]"),
		Price:       text(doc, "[data-buy-box-region='price'] .wt-text-title-larger"),
		Description: text(doc, "[data-product-details-description-text-content]"),
		ImageURL:    attr(doc, ".listing-page-image-carousel-component img", "src"),
	}
}

func extractEbay(doc *goquery.Document) Result {
	return Result{
		Title:    text(doc, "h1.x-item-title__mainTitle"),
		Price:    text(doc, ".x-price-primary"),
		ImageURL: attr(doc, ".ux-image-carousel-item img", "src"),
	}
}

// genericTitleSelectors and genericPriceSelectors are tried in rank order;
// the first non-empty hit wins.
var genericTitleSelectors = []string{
	"meta[property='og:title']",
	"meta[name='twitter:title']",
	"[itemprop='name']",
	"h1.product-title",
	"h1.product-name",
	"h1",
}

var genericPriceSelectors = []string{
	"meta[property='product:price:amount']",
	"meta[property='og:price:amount']",
	"[itemprop='price']",
	".product-price",
	".price-current",
	".price",
	"#price",
	"[class*='ProductPrice']",
	"[class*='product-price']",
}

func extractGeneric(doc *goquery.Document) Result {
	var res Result

	for _, sel := range genericTitleSelectors {
		if res.Title = metaOrText(doc, sel); res.Title != "" {
			break
		}
	}

	for _, sel := range genericPriceSelectors {
		candidate := metaOrText(doc, sel)
		if candidate == "" {
			continue
		}
		// Meta/itemprop values are already bare amounts; visible nodes need
		// the price regex to cut surrounding text.
		if strings.HasPrefix(sel, "meta") || strings.HasPrefix(sel, "[itemprop") {
			res.Price = candidate
			break
		}
		if m := matchPrice(candidate); m != "" {
			res.Price = m
			break
		}
	}
	if res.Price == "" {
		// Last resort: scan the whole page text.
		res.Price = matchPrice(doc.Find("body").Text())
	}

	res.Description = firstOf(
		attr(doc, "meta[property='og:description']", "content"),
		attr(doc, "meta[name='description']", "content"),
		text(doc, "[itemprop='description']"),
	)
	res.ImageURL = firstOf(
		attr(doc, "meta[property='og:image']", "content"),
		attr(doc, "[itemprop='image']", "src"),
	)
	res.Currency = attr(doc, "meta[property='product:price:currency']", "content")

	return res
}

func matchPrice(s string) string {
	m, err := priceRe.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return strings.TrimSpace(m.String())
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

func metaOrText(doc *goquery.Document, selector string) string {
	if strings.HasPrefix(selector, "meta") {
		return attr(doc, selector, "content")
	}
	sel := doc.Find(selector).First()
	if v, ok := sel.Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return strings.TrimSpace(sel.Text())
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
