// Package handlers implements the HTTP handlers of the rating API. JSON
// null marks a missing rating or score in both requests and responses.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quantfold/ratingkit/internal/consolidate"
	"github.com/quantfold/ratingkit/internal/portfolio"
	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
	"github.com/quantfold/ratingkit/internal/translate"
	"github.com/quantfold/ratingkit/pkg/config"
	"github.com/quantfold/ratingkit/pkg/logger"
)

// RatingsHandler handles translation, consolidation and portfolio
// endpoints
type RatingsHandler struct {
	defaultProvider string
	outputProvider  string
	strategy        scale.Strategy
	logger          *logger.Logger
}

// NewRatingsHandler creates a new ratings handler with defaults taken
// from the service configuration
func NewRatingsHandler(cfg *config.Config, log *logger.Logger) (*RatingsHandler, error) {
	strategy, err := scale.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return &RatingsHandler{
		defaultProvider: cfg.DefaultProvider,
		outputProvider:  cfg.OutputProvider,
		strategy:        strategy,
		logger:          log,
	}, nil
}

// TranslateScoresRequest asks for raw ratings to be translated to scores
type TranslateScoresRequest struct {
	Provider string    `json:"provider"`
	Tenor    string    `json:"tenor,omitempty"`
	Ratings  []*string `json:"ratings"`
}

// TranslateScoresResponse carries one score per input rating
type TranslateScoresResponse struct {
	Scores []*float64 `json:"scores"`
}

// TranslateScores translates ratings to rating scores
// POST /api/translate/scores
func (h *RatingsHandler) TranslateScores(w http.ResponseWriter, r *http.Request) {
	var req TranslateScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	provider, tenor, _, ok := h.resolve(w, req.Provider, req.Tenor, "")
	if !ok {
		return
	}

	scores := make([]*float64, len(req.Ratings))
	for i, raw := range req.Ratings {
		if raw == nil {
			continue
		}
		score, present, err := translate.RatingToScore(*raw, provider, tenor)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if present {
			s := score
			scores[i] = &s
		}
	}

	respondJSON(w, http.StatusOK, TranslateScoresResponse{Scores: scores})
}

// TranslateRatingsRequest asks for scores or WARFs to be expressed as
// ratings. Exactly one of Scores and WARF must be set.
type TranslateRatingsRequest struct {
	Provider string     `json:"provider"`
	Tenor    string     `json:"tenor,omitempty"`
	Strategy string     `json:"strategy,omitempty"`
	Scores   []*float64 `json:"scores,omitempty"`
	WARF     []*float64 `json:"warf,omitempty"`
}

// TranslateRatingsResponse carries one rating per input value
type TranslateRatingsResponse struct {
	Ratings []*string `json:"ratings"`
}

// TranslateRatings translates scores or WARFs back to rating symbols
// POST /api/translate/ratings
func (h *RatingsHandler) TranslateRatings(w http.ResponseWriter, r *http.Request) {
	var req TranslateRatingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if (req.Scores == nil) == (req.WARF == nil) {
		respondError(w, http.StatusBadRequest, "Exactly one of 'scores' and 'warf' is required")
		return
	}

	provider, tenor, strategy, ok := h.resolve(w, req.Provider, req.Tenor, req.Strategy)
	if !ok {
		return
	}

	values := req.Scores
	fromWARF := false
	if req.WARF != nil {
		values = req.WARF
		fromWARF = true
		if tenor != scale.LongTerm {
			respondError(w, http.StatusBadRequest, "WARF translation is long-term only")
			return
		}
	}

	ratings := make([]*string, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		var symbol string
		var err error
		if fromWARF {
			symbol = translate.WARFToRating(*v, provider)
		} else {
			symbol, err = translate.ScoreToRating(*v, provider, tenor, strategy)
		}
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s := symbol
		ratings[i] = &s
	}

	respondJSON(w, http.StatusOK, TranslateRatingsResponse{Ratings: ratings})
}

// TranslateWARFRequest asks for raw ratings to be translated to WARFs
type TranslateWARFRequest struct {
	Provider string    `json:"provider"`
	Ratings  []*string `json:"ratings"`
}

// TranslateWARFResponse carries one WARF per input rating
type TranslateWARFResponse struct {
	WARF []*float64 `json:"warf"`
}

// TranslateWARF translates long-term ratings to WARFs
// POST /api/translate/warf
func (h *RatingsHandler) TranslateWARF(w http.ResponseWriter, r *http.Request) {
	var req TranslateWARFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	provider, _, _, ok := h.resolve(w, req.Provider, "", "")
	if !ok {
		return
	}

	warfs := make([]*float64, len(req.Ratings))
	for i, raw := range req.Ratings {
		if raw == nil {
			continue
		}
		warf, present, err := translate.RatingToWARF(*raw, provider)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if present {
			v := warf
			warfs[i] = &v
		}
	}

	respondJSON(w, http.StatusOK, TranslateWARFResponse{WARF: warfs})
}

// ConsolidateColumn is one agency's aligned rating column
type ConsolidateColumn struct {
	Provider string    `json:"provider"`
	Ratings  []*string `json:"ratings"`
}

// ConsolidateRequest asks for several agencies' ratings to be reduced to
// a single column
type ConsolidateRequest struct {
	Mode     string              `json:"mode"`
	Output   string              `json:"output,omitempty"`
	Tenor    string              `json:"tenor,omitempty"`
	Strategy string              `json:"strategy,omitempty"`
	Columns  []ConsolidateColumn `json:"columns"`
}

// ConsolidateResponse carries the consolidated rating column
type ConsolidateResponse struct {
	Ratings []*string `json:"ratings"`
}

// Consolidate reduces aligned rating columns to one representative column
// POST /api/consolidate
func (h *RatingsHandler) Consolidate(w http.ResponseWriter, r *http.Request) {
	var req ConsolidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mode, err := consolidate.ParseMode(req.Mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	output := req.Output
	if output == "" {
		output = h.outputProvider
	}

	outputAgency, tenor, strategy, ok := h.resolve(w, output, req.Tenor, req.Strategy)
	if !ok {
		return
	}

	cols := make([]series.Column[string], len(req.Columns))
	providers := make([]scale.Agency, len(req.Columns))
	for i, col := range req.Columns {
		agency, err := scale.ParseProvider(col.Provider, tenor)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		providers[i] = agency
		cols[i] = series.Column[string]{Name: col.Provider, Cells: toCells(col.Ratings)}
	}

	out, err := consolidate.Columns(cols, providers, consolidate.Options{
		Mode:     mode,
		Output:   outputAgency,
		Tenor:    tenor,
		Strategy: strategy,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ConsolidateResponse{Ratings: fromCells(out.Cells)})
}

// AggregateRequest asks for a weighted average over possibly missing
// values
type AggregateRequest struct {
	Values  []*float64 `json:"values"`
	Weights []float64  `json:"weights"`
}

// AggregateResponse carries the weighted average
type AggregateResponse struct {
	Average float64 `json:"average"`
}

// Aggregate computes a missing-aware weighted average
// POST /api/portfolio/average
func (h *RatingsHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	var req AggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cells := make([]series.Cell[float64], len(req.Values))
	for i, v := range req.Values {
		if v != nil {
			cells[i] = series.Some(*v)
		}
	}

	avg, err := portfolio.WeightedAverage(cells, req.Weights)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, AggregateResponse{Average: avg})
}

// WARFBufferRequest asks for the headroom of a WARF inside its bucket
type WARFBufferRequest struct {
	WARF float64 `json:"warf"`
}

// WARFBufferResponse carries the buffer
type WARFBufferResponse struct {
	Buffer float64 `json:"buffer"`
}

// WARFBuffer computes the WARF increase absorbed before a notch-down
// POST /api/portfolio/warf-buffer
func (h *RatingsHandler) WARFBuffer(w http.ResponseWriter, r *http.Request) {
	var req WARFBufferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	buffer, err := portfolio.WARFBuffer(req.WARF)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, WARFBufferResponse{Buffer: buffer})
}

// resolve settles provider, tenor and strategy for a request, falling
// back to the handler defaults. On failure it writes the error response
// and returns ok=false.
func (h *RatingsHandler) resolve(w http.ResponseWriter, provider, tenor, strategy string) (scale.Agency, scale.Tenor, scale.Strategy, bool) {
	if provider == "" {
		provider = h.defaultProvider
	}
	if provider == "" {
		respondError(w, http.StatusBadRequest, "Rating provider is required")
		return "", "", "", false
	}

	resolvedTenor := scale.LongTerm
	if tenor != "" {
		var err error
		resolvedTenor, err = scale.ParseTenor(tenor)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return "", "", "", false
		}
	}

	agency, err := scale.ParseProvider(provider, resolvedTenor)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", "", "", false
	}

	resolvedStrategy := h.strategy
	if strategy != "" {
		resolvedStrategy, err = scale.ParseStrategy(strategy)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return "", "", "", false
		}
	}

	return agency, resolvedTenor, resolvedStrategy, true
}

// Helper functions

func toCells(vals []*string) []series.Cell[string] {
	cells := make([]series.Cell[string], len(vals))
	for i, v := range vals {
		if v != nil {
			cells[i] = series.Some(*v)
		}
	}
	return cells
}

func fromCells(cells []series.Cell[string]) []*string {
	out := make([]*string, len(cells))
	for i, cell := range cells {
		if cell.Valid {
			s := cell.Value
			out[i] = &s
		}
	}
	return out
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
