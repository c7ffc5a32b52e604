// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// RecommendResponse is the body of a successful GET /recommend.
//
//	{
//	  "recommended_movies": ["Interstellar", "The Prestige"],
//	  "matched_title": "Inception"
//	}
type RecommendResponse struct {
	RecommendedMovies []string `json:"recommended_movies"`
	MatchedTitle      string   `json:"matched_title,omitempty"`
}

// TitleMatch is one close match for a free-form query.
type TitleMatch struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// TitleMatchResponse is the data of GET /api/v1/titles/match.
type TitleMatchResponse struct {
	Query   string       `json:"query"`
	Matches []TitleMatch `json:"matches"`
}

// EngineStats describes the loaded catalog and similarity model.
type EngineStats struct {
	Items           int       `json:"items"`
	VocabularySize  int       `json:"vocabulary_size"`
	NonZeroFeatures int       `json:"non_zero_features"`
	DuplicateTitles int       `json:"duplicate_titles"`
	Source          string    `json:"source"`
	Fingerprint     string    `json:"fingerprint"`
	BuildTimeMS     int64     `json:"build_time_ms"`
	BuiltAt         time.Time `json:"built_at"`
	SnapshotHit     bool      `json:"snapshot_hit"`
	MatchAlgorithm  string    `json:"match_algorithm"`
	Requests        int64     `json:"requests"`
	NotFound        int64     `json:"not_found"`
}

// TitleSuggestion is one autocomplete entry.
type TitleSuggestion struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// TitleSuggestResponse is the data of GET /api/v1/titles/suggest.
type TitleSuggestResponse struct {
	Prefix      string            `json:"prefix"`
	Suggestions []TitleSuggestion `json:"suggestions"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Items  int    `json:"items,omitempty"`
	Uptime string `json:"uptime,omitempty"`
}
