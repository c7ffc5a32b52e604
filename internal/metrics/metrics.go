// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for RecommendRequests.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time to match a title and rank the catalog",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	MatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_match_score",
			Help:    "Similarity between the query and the title it matched",
			Buckets: []float64{0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1},
		},
	)

	// Engine Build Metrics
	EngineBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_build_duration_seconds",
			Help: "Duration of the last similarity engine build",
		},
	)

	EngineItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_items",
			Help: "Number of catalog rows in the similarity engine",
		},
	)

	EngineVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_vocabulary_size",
			Help: "Number of distinct terms in the TF-IDF vocabulary",
		},
	)

	SnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_loads_total",
			Help: "Similarity snapshot lookups at engine build",
		},
		[]string{"result"}, // "hit", "miss"
	)

	SnapshotGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_gc_runs_total",
			Help: "Snapshot store value log GC runs",
		},
		[]string{"result"}, // "ok", "error"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a recommendation query. matchScore is only
// observed for found outcomes.
func RecordRecommendation(outcome string, duration time.Duration, matchScore float64) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	if outcome == OutcomeFound {
		MatchScore.Observe(matchScore)
	}
}

// RecordEngineBuild records the result of a similarity engine build.
func RecordEngineBuild(items, vocabulary int, duration time.Duration, snapshotHit bool) {
	EngineBuildDuration.Set(duration.Seconds())
	EngineItems.Set(float64(items))
	EngineVocabularySize.Set(float64(vocabulary))
	if snapshotHit {
		SnapshotLoads.WithLabelValues("hit").Inc()
	} else {
		SnapshotLoads.WithLabelValues("miss").Inc()
	}
}

// RecordSnapshotGC records a snapshot store GC run.
func RecordSnapshotGC(err error) {
	if err != nil {
		SnapshotGCRuns.WithLabelValues("error").Inc()
		return
	}
	SnapshotGCRuns.WithLabelValues("ok").Inc()
}

// RecordCacheLookup records a hit or miss on the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}
