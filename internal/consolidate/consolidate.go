// Package consolidate reduces several agencies' ratings of one security to
// a single representative rating. Ratings are translated to scores, ranked
// (lower score = better credit), and the pick is re-expressed on a chosen
// output agency's scale.
package consolidate

import (
	"fmt"
	"sort"

	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
	"github.com/quantfold/ratingkit/internal/translate"
)

// Mode selects which of the ranked ratings represents the security.
type Mode string

const (
	BestRating       Mode = "best"
	SecondBestRating Mode = "second_best"
	WorstRating      Mode = "worst"
)

// Output column names per mode, matching the naming of the batch
// translators.
func (m Mode) columnName() string {
	return string(m) + "_rtg"
}

// ParseMode validates a consolidation mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case BestRating, SecondBestRating, WorstRating:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid consolidation mode %q: must be one of best, second_best, worst", s)
	}
}

// Options fixes the consolidation parameters for a batch of securities.
type Options struct {
	Mode     Mode
	Output   scale.Agency   // scale on which the result is expressed
	Tenor    scale.Tenor    // empty: long-term
	Strategy scale.Strategy // short-term reverse translation posture
}

func (o Options) tenor() scale.Tenor {
	if o.Tenor == "" {
		return scale.LongTerm
	}
	return o.Tenor
}

type scored struct {
	agency scale.Agency
	score  float64
}

// Security consolidates the ratings of a single security, one rating per
// agency. Missing ratings are ignored. The second-best of fewer than two
// present ratings is undefined and returns missing rather than degrading
// to best; a security with no present rating is missing in every mode.
func Security(ratings map[scale.Agency]string, opts Options) (string, bool, error) {
	present := make([]scored, 0, len(ratings))
	for agency, raw := range ratings {
		score, ok, err := translate.RatingToScore(raw, agency, opts.tenor())
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", agency, err)
		}
		if ok {
			present = append(present, scored{agency: agency, score: score})
		}
	}
	if len(present) == 0 {
		return "", false, nil
	}

	// Ascending score; equal scores tie-break on agency name to keep the
	// pick deterministic across map iteration order.
	sort.Slice(present, func(i, j int) bool {
		if present[i].score != present[j].score {
			return present[i].score < present[j].score
		}
		return present[i].agency < present[j].agency
	})

	var pick scored
	switch opts.Mode {
	case BestRating:
		pick = present[0]
	case WorstRating:
		pick = present[len(present)-1]
	case SecondBestRating:
		if len(present) < 2 {
			return "", false, nil
		}
		pick = present[1]
	default:
		return "", false, fmt.Errorf("invalid consolidation mode %q", opts.Mode)
	}

	symbol, err := translate.ScoreToRating(pick.score, opts.Output, opts.tenor(), opts.Strategy)
	if err != nil {
		return "", false, err
	}
	return symbol, true, nil
}

// Columns consolidates row-wise across aligned rating columns, one column
// per agency. Providers are given per column or inferred from column
// names; every column must have the same row count. The result column is
// named after the mode ("best_rtg", "second_best_rtg", "worst_rtg").
func Columns(cols []series.Column[string], providers []scale.Agency, opts Options) (series.Column[string], error) {
	if len(cols) == 0 {
		return series.Column[string]{}, fmt.Errorf("no rating columns to consolidate")
	}
	if providers != nil && len(providers) != len(cols) {
		return series.Column[string]{}, fmt.Errorf("got %d providers for %d columns", len(providers), len(cols))
	}

	agencies := make([]scale.Agency, len(cols))
	for i, col := range cols {
		if providers != nil {
			agencies[i] = providers[i]
			continue
		}
		agency, err := scale.ExtractProvider(col.Name, opts.tenor())
		if err != nil {
			return series.Column[string]{}, err
		}
		agencies[i] = agency
	}

	rows := cols[0].Len()
	for _, col := range cols[1:] {
		if col.Len() != rows {
			return series.Column[string]{}, fmt.Errorf("column %q has %d rows, want %d", col.Name, col.Len(), rows)
		}
	}

	out := series.Column[string]{Name: opts.Mode.columnName(), Cells: make([]series.Cell[string], rows)}
	for row := 0; row < rows; row++ {
		ratings := make(map[scale.Agency]string, len(cols))
		for i, col := range cols {
			if cell := col.Cells[row]; cell.Valid {
				ratings[agencies[i]] = cell.Value
			}
		}

		symbol, ok, err := Security(ratings, opts)
		if err != nil {
			return series.Column[string]{}, fmt.Errorf("row %d: %w", row, err)
		}
		if ok {
			out.Cells[row] = series.Some(symbol)
		}
	}
	return out, nil
}
