// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^\w-]`)
	hyphenRunRe  = regexp.MustCompile(`-+`)

	// NFD decomposition followed by removal of combining marks strips
	// diacritics ("É" → "E").
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make turns a title into its slug: lowercase, diacritics stripped,
// whitespace runs collapsed to single hyphens, anything that is not a word
// character or hyphen removed, hyphen runs collapsed, leading/trailing
// hyphens trimmed. Deterministic and total; empty or all-symbol input
// yields an empty string.
func Make(title string) string {
	s := strings.ToLower(title)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = invalidRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
