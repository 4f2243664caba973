package scale

import "math"

// stBand is one short-term rating with its long-term-equivalent score range.
// Ranges of one agency overlap on purpose: agencies define short-term bands
// without a clean bijection to long-term grades, and the overlap carries the
// ambiguity the strategy resolver settles. rank orders the bands within an
// agency, lower = better rating.
type stBand struct {
	symbol string
	low    int // inclusive long-term-equivalent score
	high   int // inclusive
	rank   int
}

// shortTermBands holds per-agency bands ordered by rank. Each band spans
// from the most pessimistic to the most optimistic equivalence assignment,
// so the min-rank candidate realizes the "best" reading of a score and the
// max-rank candidate the "worst".
var shortTermBands = map[Agency][]stBand{
	Moody: {
		{"P-1", 1, 7, 1},
		{"P-2", 6, 9, 2},
		{"P-3", 9, 10, 3},
		{"NP", 11, 22, 4},
	},
	SP: {
		{"A-1+", 1, 5, 1},
		{"A-1", 5, 7, 2},
		{"A-2", 7, 9, 3},
		{"A-3", 10, 11, 4},
		{"B", 11, 16, 5},
		{"C", 17, 21, 6},
		{"D", 22, 22, 7},
	},
	Fitch: {
		{"F1+", 1, 6, 1},
		{"F1", 5, 8, 2},
		{"F2", 7, 9, 3},
		{"F3", 9, 10, 4},
		{"B", 11, 16, 5},
		{"C", 17, 20, 6},
		{"D", 21, 22, 7},
	},
	DBRS: {
		{"R-1 H", 1, 3, 1},
		{"R-1 M", 2, 5, 2},
		{"R-1 L", 4, 8, 3},
		{"R-2 H", 7, 9, 4},
		{"R-2 M", 9, 10, 5},
		{"R-3", 10, 11, 6},
		{"R-4", 11, 15, 7},
		{"R-5", 15, 21, 8},
		{"D", 22, 22, 9},
	},
}

// mid returns the band's average equivalent value (AEV).
func (b stBand) mid() float64 {
	return float64(b.low+b.high) / 2
}

// width is the inclusive score count of the band.
func (b stBand) width() int {
	return b.high - b.low + 1
}

// ShortTermScore returns the long-term-equivalent score for a short-term
// symbol: the midpoint of its equivalence range (the AEV).
func ShortTermScore(agency Agency, symbol string) (float64, bool) {
	for _, b := range shortTermBands[agency] {
		if b.symbol == symbol {
			return b.mid(), true
		}
	}
	return 0, false
}

// RoundHalfUp rounds to the nearest integer, ties away from zero toward
// the higher value (x.5 rounds up).
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ResolveShortTerm picks the single short-term symbol for a long-term-
// equivalent score. The score is rounded half-up once, before containment
// is tested; candidates are every band whose range contains it.
//
//   - Best picks the lowest-rank candidate (closest to the AAA end).
//   - Worst picks the highest-rank candidate.
//   - Base picks the candidate whose midpoint is nearest relative to its
//     band width; a plain distance would let a wide neighboring band own a
//     score the primary band is centered on. Ties keep the lower rank.
//
// A score no band contains (or outside the long-term domain entirely) is
// out of range.
func ResolveShortTerm(agency Agency, score float64, strategy Strategy) (string, error) {
	rounded := RoundHalfUp(score)

	var candidates []stBand
	for _, b := range shortTermBands[agency] {
		if rounded >= b.low && rounded <= b.high {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return "", &OutOfRangeError{What: "rating score", Value: score, Agency: agency}
	}

	switch strategy {
	case Best:
		return candidates[0].symbol, nil
	case Worst:
		return candidates[len(candidates)-1].symbol, nil
	default: // Base
		pick := candidates[0]
		pickDist := relDistance(pick, rounded)
		for _, b := range candidates[1:] {
			if d := relDistance(b, rounded); d < pickDist {
				pick, pickDist = b, d
			}
		}
		return pick.symbol, nil
	}
}

// relDistance measures how far a score sits from the band's midpoint,
// scaled by the band width.
func relDistance(b stBand, score int) float64 {
	return math.Abs(float64(score)-b.mid()) / float64(b.width())
}
