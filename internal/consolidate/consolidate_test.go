package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
)

func TestSecurityRanking(t *testing.T) {
	ratings := map[scale.Agency]string{
		scale.SP:    "AAA", // score 1
		scale.Moody: "Aa1", // score 2
		scale.Fitch: "AA-", // score 4
	}

	tests := []struct {
		mode Mode
		want string
	}{
		{BestRating, "AAA"},        // score 1 on the S&P scale
		{SecondBestRating, "AA+"},  // score 2
		{WorstRating, "AA-"},       // score 4
	}

	for _, tt := range tests {
		got, ok, err := Security(ratings, Options{Mode: tt.mode, Output: scale.SP})
		require.NoError(t, err, tt.mode)
		require.True(t, ok, tt.mode)
		assert.Equal(t, tt.want, got, tt.mode)
	}
}

func TestSecurityOutputScale(t *testing.T) {
	ratings := map[scale.Agency]string{
		scale.SP:    "AAA",
		scale.Moody: "Aa1",
	}

	got, ok, err := Security(ratings, Options{Mode: WorstRating, Output: scale.DBRS})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "AAH", got) // score 2 on the DBRS scale
}

func TestSecuritySecondBestNeedsTwoRatings(t *testing.T) {
	// A single rating has no second-best; the result is missing, never a
	// silent fall back to best.
	got, ok, err := Security(map[scale.Agency]string{scale.SP: "AAA"},
		Options{Mode: SecondBestRating, Output: scale.SP})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)

	// But best and worst work with one rating.
	got, ok, err = Security(map[scale.Agency]string{scale.SP: "AAA"},
		Options{Mode: BestRating, Output: scale.SP})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "AAA", got)
}

func TestSecurityAllMissing(t *testing.T) {
	ratings := map[scale.Agency]string{
		scale.SP:    "",
		scale.Moody: "NR",
	}

	for _, mode := range []Mode{BestRating, SecondBestRating, WorstRating} {
		_, ok, err := Security(ratings, Options{Mode: mode, Output: scale.SP})
		require.NoError(t, err, mode)
		assert.False(t, ok, mode)
	}
}

func TestSecurityMissingRatingsIgnored(t *testing.T) {
	ratings := map[scale.Agency]string{
		scale.SP:    "BB-", // 13
		scale.Moody: "NR",
		scale.Fitch: "B+", // 14
	}

	got, ok, err := Security(ratings, Options{Mode: WorstRating, Output: scale.SP})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B+", got)
}

func TestSecurityShortTerm(t *testing.T) {
	ratings := map[scale.Agency]string{
		scale.Moody: "P-1", // AEV 4
		scale.SP:    "A-2", // AEV 8
	}

	got, ok, err := Security(ratings, Options{
		Mode:     WorstRating,
		Output:   scale.Fitch,
		Tenor:    scale.ShortTerm,
		Strategy: scale.Base,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "F2", got) // score 8 resolves to F2 under base
}

func TestSecurityUnknownSymbol(t *testing.T) {
	_, _, err := Security(map[scale.Agency]string{scale.SP: "Aa1"},
		Options{Mode: BestRating, Output: scale.SP})
	assert.Error(t, err)
}

func TestColumns(t *testing.T) {
	cols := []series.Column[string]{
		series.Of("rating_S&P", "AAA", "AA-", "AA+", "BB-", "C"),
		series.Of("rating_Moody's", "Aa1", "Aa3", "Aa2", "Ba3", "Ca"),
		series.Of("rating_Fitch", "AA-", "AA-", "AA-", "B+", "C"),
	}

	tests := []struct {
		mode Mode
		name string
		want []string
	}{
		{BestRating, "best_rtg", []string{"AAA", "AA-", "AA+", "BB-", "CC"}},
		{SecondBestRating, "second_best_rtg", []string{"AA+", "AA-", "AA", "BB-", "C"}},
		{WorstRating, "worst_rtg", []string{"AA-", "AA-", "AA-", "B+", "C"}},
	}

	for _, tt := range tests {
		out, err := Columns(cols, nil, Options{Mode: tt.mode, Output: scale.SP})
		require.NoError(t, err, tt.mode)

		assert.Equal(t, tt.name, out.Name)
		require.Equal(t, len(tt.want), out.Len())
		for i, want := range tt.want {
			require.True(t, out.Cells[i].Valid, "%s row %d", tt.mode, i)
			assert.Equal(t, want, out.Cells[i].Value, "%s row %d", tt.mode, i)
		}
	}
}

func TestColumnsExplicitProviders(t *testing.T) {
	cols := []series.Column[string]{
		series.Of("a", "AAA"),
		series.Of("b", "Aa1"),
	}
	providers := []scale.Agency{scale.SP, scale.Moody}

	out, err := Columns(cols, providers, Options{Mode: BestRating, Output: scale.Fitch})
	require.NoError(t, err)
	assert.Equal(t, "AAA", out.Cells[0].Value)
}

func TestColumnsMismatchedRows(t *testing.T) {
	cols := []series.Column[string]{
		series.Of("rating_S&P", "AAA", "AA"),
		series.Of("rating_Moody", "Aa1"),
	}

	_, err := Columns(cols, nil, Options{Mode: BestRating, Output: scale.SP})
	assert.Error(t, err)
}

func TestColumnsMissingRows(t *testing.T) {
	cols := []series.Column[string]{
		{Name: "rating_S&P", Cells: []series.Cell[string]{
			series.Some("AA"), series.None[string](), series.None[string](),
		}},
		{Name: "rating_Moody", Cells: []series.Cell[string]{
			series.Some("Aa3"), series.Some("Baa1"), series.None[string](),
		}},
	}

	out, err := Columns(cols, nil, Options{Mode: SecondBestRating, Output: scale.SP})
	require.NoError(t, err)

	require.True(t, out.Cells[0].Valid)
	assert.Equal(t, "AA-", out.Cells[0].Value) // scores 3,4 -> second is 4
	assert.False(t, out.Cells[1].Valid, "one rating has no second-best")
	assert.False(t, out.Cells[2].Valid, "no ratings at all")
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"best", "second_best", "worst"} {
		mode, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), mode)
	}

	_, err := ParseMode("median")
	assert.Error(t, err)
}
