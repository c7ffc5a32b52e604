// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware components for the API.

All middleware here has the http.HandlerFunc -> http.HandlerFunc shape; the
api package adapts them to chi's r.Use().

Key Components:

  - RequestID: UUID request IDs, echoed in X-Request-ID and stored in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern
  - PerformanceMonitor: sliding window of recent latencies with percentiles,
    served by the stats endpoint
  - AccessLog: one zerolog line per request

Typical order, outermost first:

	RequestID -> AccessLog -> PrometheusMetrics -> PerformanceMonitor -> handler

Thread Safety:

All middleware components are safe for concurrent use. The performance
monitor guards its ring buffer with a sync.RWMutex; Prometheus collectors
are atomic.
*/
package middleware
