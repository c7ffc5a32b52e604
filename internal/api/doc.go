// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP surface of the recommender.

Routes (see Router.SetupChi):

	GET /recommend?title=&num=          recommendations for a title
	GET /api/v1/recommend               versioned alias of /recommend
	GET /api/v1/titles/match?q=&limit=  close title matches with scores
	GET /api/v1/titles/suggest?prefix=  title autocomplete
	GET /api/v1/stats                   engine and endpoint statistics
	GET /health/live, /health/ready     liveness and readiness probes
	GET /metrics                        Prometheus exposition
	GET /swagger/*                      OpenAPI documentation

/recommend answers with the bare body

	{"recommended_movies": ["Interstellar", "The Prestige"], "matched_title": "Inception"}

so existing clients keep working. Every other endpoint, and every error,
uses the models.APIResponse envelope. An unknown title is a 404 with code
NO_MATCH; a bad title or num is a 400 with code VALIDATION_ERROR and the
offending field in details.

Recommendation responses are cached in an LRU keyed by title and count. The
engine is immutable, so entries only expire by TTL or eviction.

Middleware order, outermost first:

	RequestID -> RealIP -> Recoverer -> CORS -> AccessLog -> Compress
	    -> RateLimit -> SecurityHeaders -> PrometheusMetrics -> PerformanceMonitor
*/
package api
