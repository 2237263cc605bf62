// Package slug derives URL-safe identifiers from display titles.
package slug

import (
	"strings"
	"unicode"
)

// Make lowercases the title, collapses whitespace runs into single
// hyphens, and strips anything that isn't a letter, digit, or hyphen.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
