package scale

import (
	"fmt"
	"strings"
)

// OutOfRangeError reports a numeric input outside the domain a table can
// resolve, e.g. a WARF outside [1, 10000] or a rating score no short-term
// band covers.
type OutOfRangeError struct {
	What   string // "rating score", "WARF"
	Value  float64
	Agency Agency // zero value when the domain is agency-independent
}

func (e *OutOfRangeError) Error() string {
	if e.Agency != "" {
		return fmt.Sprintf("%s %g out of range for %s", e.What, e.Value, e.Agency)
	}
	return fmt.Sprintf("%s %g out of range", e.What, e.Value)
}

// AmbiguousProviderError reports that a rating provider could not be
// inferred from a column identifier: either no known agency alias matched,
// or aliases of more than one agency did.
type AmbiguousProviderError struct {
	Identifier string
	Matches    []Agency
}

func (e *AmbiguousProviderError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("no rating provider recognized in %q", e.Identifier)
	}
	names := make([]string, len(e.Matches))
	for i, a := range e.Matches {
		names[i] = string(a)
	}
	return fmt.Sprintf("ambiguous rating provider in %q: matches %s",
		e.Identifier, strings.Join(names, ", "))
}
