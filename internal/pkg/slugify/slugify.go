// Package slugify generates URL slugs for event pages.
package slugify

import (
	"regexp"
	"strings"
)

var (
	apostrophes  = regexp.MustCompile(`['’]`)
	nonAlphaNum  = regexp.MustCompile(`[^a-z0-9]+`)
	edgesHyphens = regexp.MustCompile(`^-+|-+$`)
)

// Make turns an event name into its slug: lowercase, apostrophes stripped,
// every other non-alphanumeric run collapsed into a single hyphen, and
// leading/trailing hyphens trimmed. "Sarah's Wedding!" becomes
// "sarahs-wedding".
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = apostrophes.ReplaceAllString(s, "")
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = edgesHyphens.ReplaceAllString(s, "")

	return s
}
