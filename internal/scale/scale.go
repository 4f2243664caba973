// Package scale holds the static rating scale tables shared by every
// translation: the 22-grade long-term table (agency symbol, rating score,
// WARF and WARF bucket) and the overlapping short-term equivalence table.
// Tables are built once and never mutated; lookups are safe for concurrent
// use without synchronization.
package scale

import "fmt"

// Agency identifies a rating provider with its own rating scale.
type Agency string

const (
	Moody     Agency = "Moody"
	SP        Agency = "SP"
	Fitch     Agency = "Fitch"
	DBRS      Agency = "DBRS"
	Bloomberg Agency = "Bloomberg"
)

// Tenor distinguishes long-term from short-term rating scales.
type Tenor string

const (
	LongTerm  Tenor = "long-term"
	ShortTerm Tenor = "short-term"
)

// Strategy selects how an ambiguous short-term translation is resolved.
// Overlapping equivalence bands mean a single long-term score can map to
// more than one short-term symbol; the caller must pick a posture.
type Strategy string

const (
	Best  Strategy = "best"
	Base  Strategy = "base"
	Worst Strategy = "worst"
)

// Agencies lists every supported rating provider for a tenor. Bloomberg
// publishes composite long-term ratings only.
func Agencies(tenor Tenor) []Agency {
	if tenor == ShortTerm {
		return []Agency{Moody, SP, Fitch, DBRS}
	}
	return []Agency{Moody, SP, Fitch, DBRS, Bloomberg}
}

// Rates reports whether the agency publishes ratings for the given tenor.
func (a Agency) Rates(tenor Tenor) bool {
	for _, agency := range Agencies(tenor) {
		if agency == a {
			return true
		}
	}
	return false
}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case Best, Base, Worst:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("invalid strategy %q: must be one of best, base, worst", s)
	}
}

// ParseTenor validates a tenor name.
func ParseTenor(s string) (Tenor, error) {
	switch Tenor(s) {
	case LongTerm, ShortTerm:
		return Tenor(s), nil
	default:
		return "", fmt.Errorf("invalid tenor %q: must be long-term or short-term", s)
	}
}
