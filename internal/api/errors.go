// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

// Error codes used in models.APIError.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNoMatch          = "NO_MATCH"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotReady         = "NOT_READY"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeTimeout          = "REQUEST_TIMEOUT"
)

// noMatchMessage is the error message for a title with no close match.
const noMatchMessage = "No matching movies found."
