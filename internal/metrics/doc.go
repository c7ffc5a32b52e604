// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Recommendation Metrics:
  - recommend_requests_total: Queries by outcome (found, not_found, invalid, error)
  - recommend_duration_seconds: Match plus ranking time (histogram)
  - recommend_match_score: Score of the matched title (histogram)

Engine Metrics:
  - engine_build_duration_seconds, engine_items, engine_vocabulary_size (gauges)
  - snapshot_loads_total: Snapshot hits and misses at build (counter)
  - snapshot_gc_runs_total: Snapshot store GC runs (counter)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counters), cache_entries (gauge)
    Labels: cache

System Metrics:
  - app_info: Version and Go version (gauge, always 1)
  - app_uptime_seconds (gauge)

# Example PromQL

Share of queries that matched nothing:

	sum(rate(recommend_requests_total{outcome="not_found"}[5m]))
	  / sum(rate(recommend_requests_total[5m]))

p95 API latency:

	histogram_quantile(0.95, sum(rate(api_request_duration_seconds_bucket[5m])) by (le))
*/
package metrics
