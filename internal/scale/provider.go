package scale

import "strings"

// providerAliases maps lowercase substrings to agencies. Longer aliases are
// listed first so "moody's" wins before "moody" (same agency either way,
// but the distinct-match counting must not double-count).
var providerAliases = []struct {
	alias  string
	agency Agency
}{
	{"moody's", Moody},
	{"moody", Moody},
	{"s&p", SP},
	{"sp", SP},
	{"fitch", Fitch},
	{"dbrs", DBRS},
	{"bloomberg", Bloomberg},
}

// ExtractProvider infers the rating agency from a column identifier such as
// "rtg_fitch" or "S&P rating" by case-insensitive substring match against
// the known aliases. The match is all-or-nothing: zero matching agencies or
// more than one distinct agency fails.
func ExtractProvider(identifier string, tenor Tenor) (Agency, error) {
	lower := strings.ToLower(identifier)

	var matches []Agency
	seen := make(map[Agency]bool)
	for _, pa := range providerAliases {
		if !pa.agency.Rates(tenor) {
			continue
		}
		if strings.Contains(lower, pa.alias) && !seen[pa.agency] {
			seen[pa.agency] = true
			matches = append(matches, pa.agency)
		}
	}

	if len(matches) != 1 {
		return "", &AmbiguousProviderError{Identifier: identifier, Matches: matches}
	}
	return matches[0], nil
}

// ParseProvider resolves an explicit provider name ("S&P", "Moody's",
// "fitch", ...) to an agency. It accepts the same aliases as inference.
func ParseProvider(name string, tenor Tenor) (Agency, error) {
	return ExtractProvider(name, tenor)
}
