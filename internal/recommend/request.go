// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is wrapped by every request validation failure.
var ErrInvalidRequest = errors.New("invalid recommendation request")

// Request asks for Count items similar to the title closest to Title.
type Request struct {
	Title string
	Count int
}

// NewRequest returns a request for DefaultCount recommendations.
func NewRequest(title string) Request {
	return Request{Title: title, Count: DefaultCount}
}

// ValidationError describes a rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// Validate checks the title is not blank and 1 <= Count <= maxCount.
// Counts are never adjusted: out-of-range values are rejected.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (r Request) Validate(maxCount int) error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if r.Count < 1 {
		return &ValidationError{Field: "count", Reason: fmt.Sprintf("must be at least 1, got %d", r.Count)}
	}
	if r.Count > maxCount {
		return &ValidationError{Field: "count", Reason: fmt.Sprintf("must be at most %d, got %d", maxCount, r.Count)}
	}
	return nil
}
