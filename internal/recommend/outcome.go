// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

// Status tells whether the query resolved to a title.
type Status int

const (
	// NotFound means no title scored at or above the match cutoff.
	NotFound Status = iota
	// Found means the query matched a title and Items is populated.
	Found
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// MatchInfo is the title the query resolved to.
type MatchInfo struct {
	Title string
	Index int
	Score float64
}

// Recommendation is one ranked result.
type Recommendation struct {
	Title string
	Index int
	Score float32
}

// Outcome is the result of Recommend.
type Outcome struct {
	Status Status
	Match  MatchInfo
	// Items are ordered by non-increasing score. Empty when NotFound, and
	// possibly empty when Found against a one-title catalog.
	Items []Recommendation
}

// Titles returns the recommended titles in rank order. Never nil.
func (o *Outcome) Titles() []string {
	titles := make([]string, len(o.Items))
	for i := range o.Items {
		titles[i] = o.Items[i].Title
	}
	return titles
}
