// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// recommendCacheName labels the response cache in metrics.
const recommendCacheName = "recommend"

// cachedRecommendation is a finished /recommend answer. Not-found answers
// are cached too.
type cachedRecommendation struct {
	found    bool
	response models.RecommendResponse
	score    float64
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_recommend.go: recommendation and title endpoints
//   - handlers_health.go: health and stats endpoints
type Handler struct {
	engine    *recommend.Engine
	config    *config.Config
	cache     *cache.LRU[cachedRecommendation] // nil when caching is disabled
	titles    *cache.TitleTrie
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates the API handler for a built engine.
//
// The handler initializes with:
//   - an LRU response cache sized by api.cache_size (unless disabled)
//   - a title trie for autocomplete, honouring match.ignore_case
//   - a performance monitor tracking the last 1000 requests
func NewHandler(engine *recommend.Engine, cfg *config.Config) *Handler {
	h := &Handler{
		engine:    engine,
		config:    cfg,
		titles:    cache.NewTitleTrie(engine.Titles(), !cfg.Match.IgnoreCase, 10),
		perfMon:   middleware.NewPerformanceMonitor(1000, cfg.Server.Timeout/2),
		startTime: time.Now(),
	}
	if cfg.API.CacheEnabled {
		h.cache = cache.NewLRU[cachedRecommendation](cfg.API.CacheSize, cfg.API.CacheTTL)
	}
	return h
}

// PerformanceMonitor returns the monitor the router installs as middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// CleanupCache removes expired cache entries and returns how many went.
func (h *Handler) CleanupCache() int {
	if h.cache == nil {
		return 0
	}
	removed := h.cache.CleanupExpired()
	metrics.CacheSize.WithLabelValues(recommendCacheName).Set(float64(h.cache.Len()))
	return removed
}
