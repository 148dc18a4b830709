package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Fold lower-cases s, decomposes it (NFD) and drops combining marks, so
// "Marrón" and "MARRON" fold to the same "marron".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// Generate creates a URL-friendly slug from the given name.
//
// Examples:
//   - "Napoli Virgin Wool Suit" → "napoli-virgin-wool-suit"
//   - "Gabardina Media Marrón" → "gabardina-media-marron"
//   - "Hello   World!" → "hello-world"
func Generate(name string) string {
	s := Fold(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
