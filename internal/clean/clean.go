// Package clean normalizes raw rating strings into the bare symbols the
// scale tables recognize. Agencies decorate ratings with watch and outlook
// markers ("AA- *+", "BBB (CwNegative)"), an unsolicited-rating "u" glued to
// the symbol ("BB+u"), and a "(P)" public-information prefix; none of these
// carry numeric meaning.
package clean

import (
	"regexp"
	"strings"
)

var (
	// Credit-watch marker: " *", " *+" or " *-" at the end.
	watchRe = regexp.MustCompile(`\s+\*[+-]?$`)

	// Parenthetical outlook/watch text: "(Developing)", "(CwPositive)", ...
	outlookRe = regexp.MustCompile(`\s*\([^)]*\)$`)
)

// Rating strips watch/outlook markers, the unsolicited "u" suffix and the
// "(P)" prefix from a raw rating string. Strings without markers pass
// through unchanged, so the function is idempotent. Missing input (the
// empty string) stays missing.
func Rating(raw string) string {
	s := strings.TrimSpace(raw)

	for {
		orig := s
		s = strings.TrimSpace(strings.TrimPrefix(s, "(P)"))
		s = watchRe.ReplaceAllString(s, "")
		s = outlookRe.ReplaceAllString(s, "")
		s = strings.TrimRight(s, "uU")
		if s == orig {
			return s
		}
	}
}

// Ratings cleans a slice in place-order, returning a new slice. Empty cells
// pass through.
func Ratings(raw []string) []string {
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = Rating(r)
	}
	return out
}
