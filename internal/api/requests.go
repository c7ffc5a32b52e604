// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Query parameter structs validated with go-playground/validator before the
// engine sees them. Bounds that depend on configuration (recommend.max_count)
// are checked by the engine itself.
package api

// RecommendQuery holds the parameters of GET /recommend.
type RecommendQuery struct {
	Title string `query:"title" validate:"notblank,max=500"`
	Num   int    `query:"num" validate:"min=1"`
}

// TitleMatchQuery holds the parameters of GET /api/v1/titles/match.
type TitleMatchQuery struct {
	Query string `query:"q" validate:"notblank,max=500"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
}

// TitleSuggestQuery holds the parameters of GET /api/v1/titles/suggest.
type TitleSuggestQuery struct {
	Prefix string `query:"prefix" validate:"notblank,max=200"`
	Limit  int    `query:"limit" validate:"min=1,max=50"`
}
