// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee recommendation server.

Marquee answers "what should I watch after X" from a movie catalog CSV. Each
movie's genres, keywords, tagline, cast and director are combined into one
document, weighted with TF-IDF and compared pairwise with cosine similarity.
A query title is resolved to the closest catalog title and the most similar
movies are returned.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── snapshot-gc (when snapshots are enabled)
	│   └── cache-janitor (when the response cache is enabled)
	└── APISupervisor ("api-layer")
	    └── http-server

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Catalog: CSV, or SQLite seeded from the CSV on first start
 4. Engine: TF-IDF model and similarity matrix, optionally restored from a
    Badger snapshot keyed by the catalog fingerprint
 5. HTTP: chi router with CORS, rate limiting, Prometheus metrics and Swagger

The engine is built before the listener starts; requests never see a
partially built engine.

# Configuration

Common environment variables:

	DATASET_PATH=data/movies.csv
	DATASET_SOURCE=csv|sqlite
	HTTP_PORT=5000
	MATCH_CUTOFF=0.6
	RECOMMEND_STEMMING=false
	SNAPSHOT_ENABLED=false
	LOG_LEVEL=info
	LOG_FORMAT=json|console

MARQUEE_CONFIG points at a YAML file with the same keys.

# Endpoints

	GET /recommend?title=<t>&num=<n>   {"recommended_movies": [...]}
	GET /api/v1/recommend              same, versioned path
	GET /api/v1/titles/match?q=        close title matches with scores
	GET /api/v1/titles/suggest?prefix= title autocomplete
	GET /api/v1/stats                  engine, cache and latency stats
	GET /health/live, /health/ready    probes
	GET /metrics                       Prometheus
	GET /swagger/index.html            API documentation

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to server.shutdown_timeout before the process exits.
*/
package main
