// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main provides the Marquee HTTP server
//
// @title Marquee API
// @version 1.0
// @description Content-based movie recommendations from TF-IDF similarity over genres, keywords, tagline, cast and director.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Health probes have a separate, higher limit.
// @description
// @description ## Error Responses
// @description
// @description Errors use the standard envelope:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {
// @description     "code": "NO_MATCH",
// @description     "message": "No matching movies found."
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Similar movies for a title
//
// @tag.name Titles
// @tag.description Title matching and autocomplete
//
// @tag.name Core
// @tag.description Engine statistics
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
