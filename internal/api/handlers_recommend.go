// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// defaultSuggestLimit is the autocomplete page size.
const defaultSuggestLimit = 10

// Recommend handles GET /recommend and GET /api/v1/recommend.
//
// @Summary Recommend similar movies
// @Description Fuzzy-matches title against the catalog and returns the most similar other titles, best first.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Movie title, matched approximately"
// @Param num query int false "Number of recommendations (default 5)"
// @Success 200 {object} models.RecommendResponse
// @Failure 400 {object} models.APIResponse "Invalid title or num"
// @Failure 404 {object} models.APIResponse "No matching movies found"
// @Router /recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	num, apiErr := intParam(r, "num", h.config.API.DefaultCount)
	if apiErr != nil {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, time.Since(start), 0)
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	query := RecommendQuery{Title: r.URL.Query().Get("title"), Num: num}
	if apiErr := validateRequest(&query); apiErr != nil {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, time.Since(start), 0)
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	key := query.Title + "\x00" + strconv.Itoa(query.Num)
	if h.cache != nil {
		cached, ok := h.cache.Get(key)
		metrics.RecordCacheLookup(recommendCacheName, ok)
		if ok {
			h.writeRecommendation(w, r, cached, start)
			return
		}
	}

	ctx := r.Context()
	if h.config.Server.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Server.Timeout)
		defer cancel()
	}

	outcome, err := h.engine.Recommend(ctx, recommend.Request{Title: query.Title, Count: query.Num})
	if err != nil {
		h.recommendError(w, r, err, start)
		return
	}

	result := cachedRecommendation{found: outcome.Status == recommend.Found}
	if result.found {
		result.response = models.RecommendResponse{
			RecommendedMovies: outcome.Titles(),
			MatchedTitle:      outcome.Match.Title,
		}
		result.score = outcome.Match.Score
	}

	if h.cache != nil {
		h.cache.Add(key, result)
		metrics.CacheSize.WithLabelValues(recommendCacheName).Set(float64(h.cache.Len()))
	}

	h.writeRecommendation(w, r, result, start)
}

func (h *Handler) writeRecommendation(w http.ResponseWriter, r *http.Request, result cachedRecommendation, start time.Time) {
	if !result.found {
		metrics.RecordRecommendation(metrics.OutcomeNotFound, time.Since(start), 0)
		respondError(w, r, http.StatusNotFound, ErrCodeNoMatch, noMatchMessage, nil)
		return
	}
	metrics.RecordRecommendation(metrics.OutcomeFound, time.Since(start), result.score)
	writeJSON(w, r, http.StatusOK, &result.response)
}

// recommendError maps an engine error to a response.
func (h *Handler) recommendError(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	var verr *recommend.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.RecordRecommendation(metrics.OutcomeInvalid, time.Since(start), 0)
		field := verr.Field
		if field == "count" {
			field = "num"
		}
		respondAPIError(w, r, http.StatusBadRequest, fieldError(field, field+" "+verr.Reason, nil))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0)
		logging.Ctx(r.Context()).Warn().Err(err).Msg("recommendation abandoned")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeTimeout, "Request timed out", nil)
	default:
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0)
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate recommendations", err)
	}
}

// MatchTitles handles GET /api/v1/titles/match.
//
// @Summary Find close title matches
// @Description Returns catalog titles similar to q with their match scores, best first.
// @Tags Titles
// @Produce json
// @Param q query string true "Free-form title"
// @Param limit query int false "Maximum matches (1-50, default match.candidates)"
// @Success 200 {object} models.APIResponse{data=models.TitleMatchResponse}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/titles/match [get]
func (h *Handler) MatchTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := intParam(r, "limit", h.engine.Config().Match.Candidates)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	query := TitleMatchQuery{Query: r.URL.Query().Get("q"), Limit: limit}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	candidates, err := h.engine.Match(r.Context(), query.Query, query.Limit)
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeTimeout, "Request timed out", err)
		return
	}

	matches := make([]models.TitleMatch, len(candidates))
	for i, c := range candidates {
		matches[i] = models.TitleMatch{Title: c.Title, Score: c.Score}
	}

	respondJSON(w, r, http.StatusOK, models.TitleMatchResponse{Query: query.Query, Matches: matches}, start)
}

// SuggestTitles handles GET /api/v1/titles/suggest.
//
// @Summary Autocomplete titles
// @Description Returns catalog titles starting with prefix.
// @Tags Titles
// @Produce json
// @Param prefix query string true "Title prefix"
// @Param limit query int false "Maximum suggestions (1-50, default 10)"
// @Success 200 {object} models.APIResponse{data=models.TitleSuggestResponse}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/titles/suggest [get]
func (h *Handler) SuggestTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := intParam(r, "limit", defaultSuggestLimit)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	query := TitleSuggestQuery{Prefix: r.URL.Query().Get("prefix"), Limit: limit}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	found := h.titles.Suggest(query.Prefix, query.Limit)
	suggestions := make([]models.TitleSuggestion, len(found))
	for i, s := range found {
		suggestions[i] = models.TitleSuggestion{Title: s.Title, Count: s.Count}
	}

	respondJSON(w, r, http.StatusOK, models.TitleSuggestResponse{Prefix: query.Prefix, Suggestions: suggestions}, start)
}
