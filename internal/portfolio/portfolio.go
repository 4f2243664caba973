// Package portfolio aggregates security-level scores and WARFs into
// portfolio-level figures.
package portfolio

import (
	"errors"
	"fmt"

	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
)

// ErrNoData is returned when every value in an aggregation is missing or
// carries zero weight.
var ErrNoData = errors.New("no weighted data to aggregate")

// WeightedAverage computes the weight-weighted mean of values, skipping
// missing cells. The weights of the present cells are renormalized so a
// partially rated portfolio is averaged over its rated share only.
func WeightedAverage(values []series.Cell[float64], weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("got %d values for %d weights", len(values), len(weights))
	}

	var sum, weightSum float64
	for i, cell := range values {
		if !cell.Valid {
			continue
		}
		sum += cell.Value * weights[i]
		weightSum += weights[i]
	}
	if weightSum == 0 {
		return 0, ErrNoData
	}
	return sum / weightSum, nil
}

// WARFBuffer is the WARF increase a portfolio can absorb before its
// derived rating notches down, i.e. the distance to the upper bound of
// the current WARF bucket.
func WARFBuffer(warf float64) (float64, error) {
	_, maxWARF, err := scale.WARFBucket(warf)
	if err != nil {
		return 0, err
	}
	return maxWARF - warf, nil
}
