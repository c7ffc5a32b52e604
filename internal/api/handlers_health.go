// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// HealthLive handles GET /health/live. It only proves the process serves HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, &models.HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HealthReady handles GET /health/ready. The server is ready once an engine
// is attached; an empty catalog is still ready but reported as such.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.APIResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "Engine not loaded", nil)
		return
	}

	status := "ready"
	if h.engine.Len() == 0 {
		status = "empty"
	}
	writeJSON(w, r, http.StatusOK, &models.HealthResponse{
		Status: status,
		Items:  h.engine.Len(),
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	})
}

// CacheStats reports the response cache counters.
type CacheStats struct {
	Enabled bool  `json:"enabled"`
	Size    int   `json:"size"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// StatsResponse is the data of GET /api/v1/stats.
type StatsResponse struct {
	Engine    models.EngineStats         `json:"engine"`
	Cache     CacheStats                 `json:"cache"`
	Endpoints []middleware.EndpointStats `json:"endpoints"`
}

// Stats handles GET /api/v1/stats.
//
// @Summary Engine statistics
// @Description Catalog size, vocabulary, build timing, request counters and recent endpoint latency.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=StatsResponse}
// @Router /api/v1/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s := h.engine.Stats()

	resp := StatsResponse{
		Engine:    ToEngineStats(&s),
		Endpoints: h.perfMon.Stats(),
	}
	if h.cache != nil {
		hits, misses, size := h.cache.Stats()
		resp.Cache = CacheStats{Enabled: true, Size: size, Hits: hits, Misses: misses}
	}

	respondJSON(w, r, http.StatusOK, resp, start)
}

// ToEngineStats converts engine statistics to their JSON form.
func ToEngineStats(s *recommend.Stats) models.EngineStats {
	return models.EngineStats{
		Items:           s.Items,
		VocabularySize:  s.VocabularySize,
		NonZeroFeatures: s.NonZeroFeatures,
		DuplicateTitles: s.DuplicateTitles,
		Source:          s.Source,
		Fingerprint:     s.Fingerprint,
		BuildTimeMS:     s.BuildDuration.Milliseconds(),
		BuiltAt:         s.BuiltAt,
		SnapshotHit:     s.SnapshotHit,
		MatchAlgorithm:  s.MatchAlgorithm,
		Requests:        s.Requests,
		NotFound:        s.NotFound,
	}
}
