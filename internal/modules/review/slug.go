package review

import (
	"strings"
	"unicode"
)

// Slugify derives the canonical company identifier from a display name:
// lower-case, drop everything outside ASCII letters/digits/underscore/
// hyphen/whitespace, collapse runs of whitespace/underscore/hyphen into a
// single hyphen, and trim hyphens at the ends. "Acme, Inc." -> "acme-inc".
func Slugify(name string) string {
	var b strings.Builder
	prevSep := false

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevSep = false
		case r == '_' || r == '-' || unicode.IsSpace(r):
			if !prevSep {
				b.WriteByte('-')
			}
			prevSep = true
		}
	}

	return strings.Trim(b.String(), "-")
}
