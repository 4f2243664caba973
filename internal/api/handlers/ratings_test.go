package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/ratingkit/pkg/config"
	"github.com/quantfold/ratingkit/pkg/logger"
)

func testHandler(t *testing.T) *RatingsHandler {
	t.Helper()

	cfg := &config.Config{
		OutputProvider: "S&P",
		Strategy:       "base",
		LogLevel:       "error",
	}
	h, err := NewRatingsHandler(cfg, logger.New(cfg))
	require.NoError(t, err)
	return h
}

func post(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func strPtr(s string) *string   { return &s }
func numPtr(v float64) *float64 { return &v }

func TestTranslateScores(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateScores, TranslateScoresRequest{
		Provider: "Moody",
		Ratings:  []*string{strPtr("Baa1"), strPtr("NR"), nil, strPtr("SD")},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[TranslateScoresResponse](t, rec)
	require.Len(t, resp.Scores, 4)
	assert.Equal(t, 8.0, *resp.Scores[0])
	assert.Nil(t, resp.Scores[1], "not-rated is null")
	assert.Nil(t, resp.Scores[2], "null stays null")
	assert.Equal(t, 22.0, *resp.Scores[3])
}

func TestTranslateScoresShortTerm(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateScores, TranslateScoresRequest{
		Provider: "Moody",
		Tenor:    "short-term",
		Ratings:  []*string{strPtr("P-1")},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[TranslateScoresResponse](t, rec)
	assert.Equal(t, 4.0, *resp.Scores[0])
}

func TestTranslateScoresUnknownSymbol(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateScores, TranslateScoresRequest{
		Provider: "S&P",
		Ratings:  []*string{strPtr("Aa1")},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateScoresRequiresProvider(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateScores, TranslateScoresRequest{
		Ratings: []*string{strPtr("AAA")},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateRatingsFromScores(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateRatings, TranslateRatingsRequest{
		Provider: "Fitch",
		Scores:   []*float64{numPtr(5), numPtr(5.4), nil, numPtr(22)},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[TranslateRatingsResponse](t, rec)
	require.Len(t, resp.Ratings, 4)
	assert.Equal(t, "A+", *resp.Ratings[0])
	assert.Equal(t, "A+", *resp.Ratings[1])
	assert.Nil(t, resp.Ratings[2])
	assert.Equal(t, "D", *resp.Ratings[3])
}

func TestTranslateRatingsFromWARF(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateRatings, TranslateRatingsRequest{
		Provider: "S&P",
		WARF:     []*float64{numPtr(1234.5678), nil},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[TranslateRatingsResponse](t, rec)
	assert.Equal(t, "BB", *resp.Ratings[0])
	assert.Nil(t, resp.Ratings[1])
}

func TestTranslateRatingsRejectsBothInputs(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateRatings, TranslateRatingsRequest{
		Provider: "S&P",
		Scores:   []*float64{numPtr(1)},
		WARF:     []*float64{numPtr(1)},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h.TranslateRatings, TranslateRatingsRequest{Provider: "S&P"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateWARF(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.TranslateWARF, TranslateWARFRequest{
		Provider: "Moody",
		Ratings:  []*string{strPtr("Baa1"), strPtr("WD"), nil},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[TranslateWARFResponse](t, rec)
	assert.Equal(t, 260.0, *resp.WARF[0])
	assert.Nil(t, resp.WARF[1])
	assert.Nil(t, resp.WARF[2])
}

func TestConsolidate(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.Consolidate, ConsolidateRequest{
		Mode: "worst",
		Columns: []ConsolidateColumn{
			{Provider: "S&P", Ratings: []*string{strPtr("AAA"), strPtr("BB-")}},
			{Provider: "Moody", Ratings: []*string{strPtr("Aa1"), nil}},
			{Provider: "Fitch", Ratings: []*string{strPtr("AA-"), strPtr("B+")}},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ConsolidateResponse](t, rec)
	require.Len(t, resp.Ratings, 2)
	assert.Equal(t, "AA-", *resp.Ratings[0])
	assert.Equal(t, "B+", *resp.Ratings[1])
}

func TestConsolidateSecondBestMissing(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.Consolidate, ConsolidateRequest{
		Mode: "second_best",
		Columns: []ConsolidateColumn{
			{Provider: "S&P", Ratings: []*string{strPtr("AAA")}},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ConsolidateResponse](t, rec)
	require.Len(t, resp.Ratings, 1)
	assert.Nil(t, resp.Ratings[0])
}

func TestConsolidateInvalidMode(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.Consolidate, ConsolidateRequest{Mode: "median"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAggregate(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.Aggregate, AggregateRequest{
		Values:  []*float64{numPtr(10), nil, numPtr(20)},
		Weights: []float64{0.5, 0.3, 0.2},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[AggregateResponse](t, rec)
	assert.InDelta(t, 12.857142857142858, resp.Average, 1e-12)
}

func TestAggregateNoData(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.Aggregate, AggregateRequest{
		Values:  []*float64{nil},
		Weights: []float64{1},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWARFBuffer(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.WARFBuffer, WARFBufferRequest{WARF: 165.58})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[WARFBufferResponse](t, rec)
	assert.InDelta(t, 54.42, resp.Buffer, 1e-9)
}

func TestWARFBufferOutOfRange(t *testing.T) {
	h := testHandler(t)

	rec := post(t, h.WARFBuffer, WARFBufferRequest{WARF: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
