package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wishwell/wishwell-api/internal/pkg/textutil"
)

func TestTruncateTitle(t *testing.T) {
	t.Run("short titles pass through", func(t *testing.T) {
		assert.Equal(t, "KitchenAid Stand Mixer", textutil.TruncateTitle("KitchenAid Stand Mixer"))
	})

	t.Run("cuts at the last word boundary before the limit", func(t *testing.T) {
		// 43 runes; the limit falls on the space before "Dog".
		got := textutil.TruncateTitle("The Quick Brown Fox Jumps Over The Lazy Dog")

		assert.Equal(t, "The Quick Brown Fox Jumps Over The Lazy", got)
	})

	t.Run("never exceeds the limit", func(t *testing.T) {
		got := textutil.TruncateTitle(strings.Repeat("very long title ", 10))

		assert.LessOrEqual(t, len([]rune(got)), textutil.TitleLimit)
		assert.False(t, strings.HasSuffix(got, " "))
	})

	t.Run("hard cut when there is no space", func(t *testing.T) {
		got := textutil.TruncateTitle(strings.Repeat("x", 50))

		assert.Equal(t, strings.Repeat("x", 40), got)
	})

	t.Run("trailing punctuation is trimmed after the cut", func(t *testing.T) {
		// Cut lands right after a comma-terminated word.
		got := textutil.TruncateTitle("Espresso machine, stainless steel edition, with grinder")

		assert.False(t, strings.HasSuffix(got, ","))
		assert.LessOrEqual(t, len([]rune(got)), textutil.TitleLimit)
	})
}

func TestTruncateDescription(t *testing.T) {
	t.Run("short descriptions pass through", func(t *testing.T) {
		assert.Equal(t, "A lovely gift.", textutil.TruncateDescription("A lovely gift."))
	})

	t.Run("prefers a sentence end near the limit", func(t *testing.T) {
		first := strings.Repeat("a", 179) + "."
		input := first + " " + strings.Repeat("b", 100)

		got := textutil.TruncateDescription(input)

		assert.Equal(t, first, got)
	})

	t.Run("ignores a sentence end outside the window", func(t *testing.T) {
		// The only period sits at rune 100, further back than the window
		// allows, so the word-boundary rule wins.
		input := strings.Repeat("a", 99) + ". " + strings.Repeat("word ", 40)

		got := textutil.TruncateDescription(input)

		assert.True(t, strings.HasSuffix(got, "…"))
		assert.LessOrEqual(t, len([]rune(got)), textutil.DescriptionLimit)
	})

	t.Run("falls back to a word boundary with ellipsis", func(t *testing.T) {
		got := textutil.TruncateDescription(strings.Repeat("word ", 50))

		assert.Equal(t, strings.Repeat("word ", 38)+"word…", got)
		assert.LessOrEqual(t, len([]rune(got)), textutil.DescriptionLimit)
	})

	t.Run("hard cut with ellipsis when there are no spaces", func(t *testing.T) {
		got := textutil.TruncateDescription(strings.Repeat("x", 250))

		assert.Equal(t, strings.Repeat("x", 199)+"…", got)
		assert.Equal(t, textutil.DescriptionLimit, len([]rune(got)))
	})
}
