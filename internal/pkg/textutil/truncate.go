// Package textutil holds the truncation rules applied to scraped product
// text before it is offered as a wish prefill.
package textutil

import "strings"

const (
	// TitleLimit is the maximum wish title length in runes.
	TitleLimit = 40
	// DescriptionLimit is the maximum wish description length in runes.
	DescriptionLimit = 200

	// sentenceWindow is how far back from the description cutoff a sentence
	// end is still considered a natural break.
	sentenceWindow = 50

	ellipsis = "…"
)

// TruncateTitle shortens s to at most TitleLimit runes, preferring the last
// word boundary before the limit. The result never exceeds TitleLimit.
func TruncateTitle(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= TitleLimit {
		return s
	}

	cut := runes[:TitleLimit]
	if i := lastSpace(cut); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(string(cut), " ,.;:-")
}

// TruncateDescription shortens s to at most DescriptionLimit runes. It cuts
// at a sentence end if one falls within the last sentenceWindow runes of the
// limit, otherwise at a word boundary with an ellipsis, otherwise hard with
// an ellipsis.
func TruncateDescription(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= DescriptionLimit {
		return s
	}

	window := runes[:DescriptionLimit]
	if i := lastSentenceEnd(window); i >= DescriptionLimit-sentenceWindow {
		return strings.TrimSpace(string(window[:i+1]))
	}

	// Leave room for the ellipsis rune.
	window = runes[:DescriptionLimit-1]
	if i := lastSpace(window); i > 0 {
		return strings.TrimRight(string(window[:i]), " ,;:-") + ellipsis
	}

	return string(window) + ellipsis
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}

	return -1
}

func lastSentenceEnd(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case '.', '!', '?':
			return i
		}
	}

	return -1
}
