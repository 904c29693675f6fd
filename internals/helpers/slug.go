// file: internals/helpers/slug.go
package helper

import (
	"regexp"
	"strings"
	"unicode"
)

const DefaultSlugMaxLen = 160

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug normalizes a string into a slug:
// - lower-case
// - spaces & non-alnum become "-"
// - collapse multiple "-" into one
// - trim "-" at both ends
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	out = reDash.ReplaceAllString(out, "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}
