package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes runes and removes combining marks, so accented
// characters fold to their ASCII base before filtering.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a free-text skin or champion name into a join
// key: diacritics are folded, everything is lowercased, and every rune
// outside [a-z0-9] is dropped. The function is pure and idempotent, and
// an empty input yields the empty key.
//
// Names that differ only in punctuation normalize to the same key and
// will be merged downstream. That is a known limitation of the key
// scheme, not a case this function tries to disambiguate.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
