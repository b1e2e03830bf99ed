package scrape

import "strings"

// domainCurrencies maps retail domain suffixes to the currency the site
// almost certainly prices in. Checked before falling back to symbol
// detection because "$" is ambiguous across USD/CAD/AUD.
var domainCurrencies = map[string]string{
	".co.uk":  "GBP",
	".uk":     "GBP",
	".de":     "EUR",
	".fr":     "EUR",
	".es":     "EUR",
	".it":     "EUR",
	".nl":     "EUR",
	".ie":     "EUR",
	".ca":     "CAD",
	".com.au": "AUD",
	".co.nz":  "NZD",
	".sg":     "SGD",
	".co.jp":  "JPY",
	".jp":     "JPY",
	".ch":     "CHF",
	".se":     "SEK",
}

var symbolCurrencies = []struct {
	symbol   string
	currency string
}{
	{"£", "GBP"},
	{"€", "EUR"},
	{"$", "USD"},
}

// inferCurrency guesses the price currency from the page's domain, then from
// currency symbols in the extracted price text. Returns "" when neither
// gives a signal.
func inferCurrency(host, price string) string {
	// Longest suffix wins so ".com.au" beats a hypothetical ".au" entry.
	best := ""
	currency := ""
	for suffix, code := range domainCurrencies {
		if strings.HasSuffix(host, suffix) && len(suffix) > len(best) {
			best = suffix
			currency = code
		}
	}
	if currency != "" {
		return currency
	}

	for _, sc := range symbolCurrencies {
		if strings.Contains(price, sc.symbol) {
			return sc.currency
		}
	}

	return ""
}

// normalizePrice strips currency symbols and separators from a matched price
// down to a plain decimal string, handling both 1,299.99 and 1.299,99
// conventions.
func normalizePrice(price string) string {
	s := strings.TrimSpace(price)
	for _, sym := range []string{"$", "€", "£"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// A comma followed by exactly two trailing digits is a decimal comma.
	if i := strings.LastIndex(s, ","); i != -1 && len(s)-i == 3 {
		s = strings.ReplaceAll(s[:i], ".", "") + "." + s[i+1:]
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	return s
}
