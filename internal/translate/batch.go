package translate

import (
	"fmt"

	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
	"github.com/quantfold/ratingkit/pkg/logger"
)

// Output column name prefixes. Deterministic and collision-free across
// repeated calls: translating twice prefixes twice.
const (
	scorePrefix  = "rtg_score_"
	ratingPrefix = "rtg_"
	warfPrefix   = "warf_"
)

// Batch applies the scalar translators element-wise over named columns.
// The provider is settled once per column: the explicit Provider when set,
// otherwise inferred from the column name. Missing cells propagate to
// missing without touching the scalar layer.
type Batch struct {
	Provider scale.Agency   // empty: infer from each column's name
	Tenor    scale.Tenor    // empty: long-term
	Strategy scale.Strategy // short-term reverse translation posture
	Log      *logger.Logger // optional
}

func (b Batch) tenor() scale.Tenor {
	if b.Tenor == "" {
		return scale.LongTerm
	}
	return b.Tenor
}

// providerFor settles the agency for a column, inferring from its name
// when no explicit provider is configured.
func (b Batch) providerFor(columnName string) (scale.Agency, error) {
	if b.Provider != "" {
		return b.Provider, nil
	}
	return scale.ExtractProvider(columnName, b.tenor())
}

func (b Batch) debugf(format string, args ...interface{}) {
	if b.Log != nil {
		b.Log.Debugf(format, args...)
	}
}

// ScoresFromRatings translates a column of raw ratings to rating scores.
// The output column is named "rtg_score_<input name>".
func (b Batch) ScoresFromRatings(col series.Column[string]) (series.Column[float64], error) {
	agency, err := b.providerFor(col.Name)
	if err != nil {
		return series.Column[float64]{}, err
	}
	b.debugf("translating column %q to scores as %s %s", col.Name, agency, b.tenor())

	out := series.Column[float64]{Name: scorePrefix + col.Name, Cells: make([]series.Cell[float64], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		score, ok, err := RatingToScore(cell.Value, agency, b.tenor())
		if err != nil {
			return series.Column[float64]{}, fmt.Errorf("column %q row %d: %w", col.Name, i, err)
		}
		if ok {
			out.Cells[i] = series.Some(score)
		}
	}
	return out, nil
}

// RatingsFromScores translates a column of rating scores to rating symbols
// on the output agency's scale. The output column is named "rtg_<agency>".
func (b Batch) RatingsFromScores(col series.Column[float64]) (series.Column[string], error) {
	agency, err := b.providerFor(col.Name)
	if err != nil {
		return series.Column[string]{}, err
	}
	b.debugf("translating column %q to %s %s ratings", col.Name, agency, b.tenor())

	out := series.Column[string]{Name: ratingPrefix + string(agency), Cells: make([]series.Cell[string], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		symbol, err := ScoreToRating(cell.Value, agency, b.tenor(), b.Strategy)
		if err != nil {
			return series.Column[string]{}, fmt.Errorf("column %q row %d: %w", col.Name, i, err)
		}
		out.Cells[i] = series.Some(symbol)
	}
	return out, nil
}

// WARFFromRatings translates a column of raw long-term ratings to WARFs.
// The output column is named "warf_<input name>".
func (b Batch) WARFFromRatings(col series.Column[string]) (series.Column[float64], error) {
	agency, err := b.providerFor(col.Name)
	if err != nil {
		return series.Column[float64]{}, err
	}
	b.debugf("translating column %q to WARFs as %s", col.Name, agency)

	out := series.Column[float64]{Name: warfPrefix + col.Name, Cells: make([]series.Cell[float64], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		warf, ok, err := RatingToWARF(cell.Value, agency)
		if err != nil {
			return series.Column[float64]{}, fmt.Errorf("column %q row %d: %w", col.Name, i, err)
		}
		if ok {
			out.Cells[i] = series.Some(warf)
		}
	}
	return out, nil
}

// RatingsFromWARF translates a column of WARFs to rating symbols on the
// output agency's scale. Missing cells stay missing; present WARFs are
// clamped into [1, 10000].
func (b Batch) RatingsFromWARF(col series.Column[float64]) (series.Column[string], error) {
	agency, err := b.providerFor(col.Name)
	if err != nil {
		return series.Column[string]{}, err
	}
	b.debugf("translating column %q from WARFs to %s ratings", col.Name, agency)

	out := series.Column[string]{Name: ratingPrefix + string(agency), Cells: make([]series.Cell[string], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		out.Cells[i] = series.Some(WARFToRating(cell.Value, agency))
	}
	return out, nil
}

// ScoresFromWARF translates a column of WARFs to rating scores. No
// provider is involved; the output column is named "rtg_score_<input name>".
func (b Batch) ScoresFromWARF(col series.Column[float64]) (series.Column[float64], error) {
	out := series.Column[float64]{Name: scorePrefix + col.Name, Cells: make([]series.Cell[float64], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		score, err := WARFToScore(cell.Value)
		if err != nil {
			return series.Column[float64]{}, fmt.Errorf("column %q row %d: %w", col.Name, i, err)
		}
		out.Cells[i] = series.Some(float64(score))
	}
	return out, nil
}

// WARFFromScores translates a column of rating scores to WARFs. No
// provider is involved; the output column is named "warf_<input name>".
func (b Batch) WARFFromScores(col series.Column[float64]) (series.Column[float64], error) {
	out := series.Column[float64]{Name: warfPrefix + col.Name, Cells: make([]series.Cell[float64], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		warf, err := ScoreToWARF(cell.Value)
		if err != nil {
			return series.Column[float64]{}, fmt.Errorf("column %q row %d: %w", col.Name, i, err)
		}
		out.Cells[i] = series.Some(warf)
	}
	return out, nil
}
