// Package translate converts between ratings, rating scores and WARFs, one
// value at a time or column-wise. Raw rating strings are cleansed before
// lookup; missing input always translates to missing output without error.
package translate

import (
	"fmt"

	"github.com/quantfold/ratingkit/internal/clean"
	"github.com/quantfold/ratingkit/internal/scale"
)

// UnknownSymbolError reports a cleansed, non-empty rating symbol absent
// from the agency's scale for the tenor. It signals bad or unsupported
// data, as opposed to legitimately missing input.
type UnknownSymbolError struct {
	Agency scale.Agency
	Tenor  scale.Tenor
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown %s symbol %q for %s", e.Tenor, e.Symbol, e.Agency)
}

// RatingToScore cleanses a raw rating and translates it to its numeric
// score. Long-term scores are integers 1..22; short-term ratings translate
// to their average equivalent value, which may end in .5. Missing input
// (empty or a not-rated sentinel such as "NR") returns ok=false with no
// error.
func RatingToScore(raw string, agency scale.Agency, tenor scale.Tenor) (float64, bool, error) {
	if !agency.Rates(tenor) {
		return 0, false, fmt.Errorf("%s has no %s scale", agency, tenor)
	}

	symbol := clean.Rating(raw)
	if symbol == "" || scale.NotRated(symbol) {
		return 0, false, nil
	}

	if tenor == scale.ShortTerm {
		score, ok := scale.ShortTermScore(agency, symbol)
		if !ok {
			return 0, false, &UnknownSymbolError{Agency: agency, Tenor: tenor, Symbol: symbol}
		}
		return score, true, nil
	}

	score, ok := scale.LongTermScore(agency, symbol)
	if !ok {
		return 0, false, &UnknownSymbolError{Agency: agency, Tenor: tenor, Symbol: symbol}
	}
	return float64(score), true, nil
}

// ScoreToRating translates a numeric score back to a rating symbol. The
// score is rounded half-up to the nearest grade first. Short-term
// translation is ambiguous by construction and needs a strategy.
func ScoreToRating(score float64, agency scale.Agency, tenor scale.Tenor, strategy scale.Strategy) (string, error) {
	if !agency.Rates(tenor) {
		return "", fmt.Errorf("%s has no %s scale", agency, tenor)
	}

	if tenor == scale.ShortTerm {
		return scale.ResolveShortTerm(agency, score, strategy)
	}

	rounded := scale.RoundHalfUp(score)
	symbol, ok := scale.LongTermSymbol(agency, rounded)
	if !ok {
		return "", &scale.OutOfRangeError{What: "rating score", Value: score, Agency: agency}
	}
	return symbol, nil
}

// RatingToWARF cleanses a raw long-term rating and translates it to its
// WARF. Missing input returns ok=false with no error.
func RatingToWARF(raw string, agency scale.Agency) (float64, bool, error) {
	score, ok, err := RatingToScore(raw, agency, scale.LongTerm)
	if err != nil || !ok {
		return 0, ok, err
	}
	warf, _ := scale.WARFForScore(int(score))
	return warf, true, nil
}

// WARFToRating translates a WARF to the agency symbol of its bucket. WARFs
// outside [1, 10000] are clamped to the boundary buckets; absent input is
// the caller's problem, a WARF itself is never missing.
func WARFToRating(warf float64, agency scale.Agency) string {
	return scale.SymbolForWARF(agency, warf)
}

// WARFToScore translates a WARF to the rating score of its bucket.
func WARFToScore(warf float64) (int, error) {
	return scale.ScoreForWARF(warf)
}

// ScoreToWARF translates a rating score to its WARF. The score is rounded
// half-up to the nearest grade first.
func ScoreToWARF(score float64) (float64, error) {
	rounded := scale.RoundHalfUp(score)
	warf, ok := scale.WARFForScore(rounded)
	if !ok {
		return 0, &scale.OutOfRangeError{What: "rating score", Value: score}
	}
	return warf, nil
}
