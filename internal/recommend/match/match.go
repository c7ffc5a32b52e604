// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package match resolves a free-form query to known titles.
//
// The default scorer is the longest-matching-blocks ratio 2*M/T over the two
// strings' characters, with the cheap upper bounds checked first. Results
// are ordered by score, then by title, both descending.
package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

// Algorithm names accepted by ParseAlgorithm.
const (
	AlgorithmSequence    = "sequence"
	AlgorithmLevenshtein = "levenshtein"
)

// Defaults for CloseMatches callers.
const (
	DefaultCandidates = 3
	DefaultCutoff     = 0.6
)

// Candidate is a title that scored at or above the cutoff.
type Candidate struct {
	Title string
	// Index is the first row carrying Title.
	Index int
	Score float64
}

// Scorer rates how alike a query and a title are, in [0, 1].
type Scorer interface {
	Name() string
	// Score returns the similarity, or ok=false when the pair is known to fall
	// below cutoff without computing the full score.
	Score(query, title []string, cutoff float64) (score float64, ok bool)
}

type title struct {
	text  string
	key   []string
	index int
}

// Matcher holds the candidate titles. It is immutable and safe for
// concurrent use.
type Matcher struct {
	titles     []title
	scorer     Scorer
	ignoreCase bool
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithScorer selects the scoring function.
func WithScorer(s Scorer) Option {
	return func(m *Matcher) {
		if s != nil {
			m.scorer = s
		}
	}
}

// WithIgnoreCase compares lowercased strings.
func WithIgnoreCase(enabled bool) Option {
	return func(m *Matcher) {
		m.ignoreCase = enabled
	}
}

// New indexes titles. Empty titles are never candidates, and repeated titles
// are kept once with the index of their first row.
func New(titles []string, opts ...Option) *Matcher {
	m := &Matcher{scorer: Sequence{}}
	for _, opt := range opts {
		opt(m)
	}

	seen := make(map[string]struct{}, len(titles))
	m.titles = make([]title, 0, len(titles))
	for i, t := range titles {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		m.titles = append(m.titles, title{text: t, key: m.split(t), index: i})
	}
	return m
}

// Len returns the number of distinct candidate titles.
func (m *Matcher) Len() int {
	return len(m.titles)
}

// Scorer returns the configured scorer.
func (m *Matcher) Scorer() Scorer {
	return m.scorer
}

// CloseMatches returns at most n titles scoring at least cutoff against
// query, best first. n must be positive and cutoff within [0, 1]; otherwise
// nothing matches.
func (m *Matcher) CloseMatches(query string, n int, cutoff float64) []Candidate {
	if n <= 0 || cutoff < 0 || cutoff > 1 {
		return nil
	}

	q := m.split(query)
	var found []Candidate
	for i := range m.titles {
		t := &m.titles[i]
		score, ok := m.scorer.Score(q, t.key, cutoff)
		if !ok || score < cutoff {
			continue
		}
		found = append(found, Candidate{Title: t.text, Index: t.index, Score: score})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Score != found[j].Score {
			return found[i].Score > found[j].Score
		}
		return found[i].Title > found[j].Title
	})

	if len(found) > n {
		found = found[:n]
	}
	return found
}

// Best returns the top match, if any.
func (m *Matcher) Best(query string, n int, cutoff float64) (Candidate, bool) {
	found := m.CloseMatches(query, n, cutoff)
	if len(found) == 0 {
		return Candidate{}, false
	}
	return found[0], true
}

// split returns s as a sequence of one-character strings.
func (m *Matcher) split(s string) []string {
	if m.ignoreCase {
		s = strings.ToLower(s)
	}
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Sequence scores with difflib's SequenceMatcher ratio.
type Sequence struct{}

// Name implements Scorer.
func (Sequence) Name() string { return AlgorithmSequence }

// Score implements Scorer. The title is the first sequence and the query the
// second, so junk heuristics apply to the query.
func (Sequence) Score(query, title []string, cutoff float64) (float64, bool) {
	sm := difflib.NewMatcher(title, query)
	if sm.RealQuickRatio() < cutoff {
		return 0, false
	}
	if sm.QuickRatio() < cutoff {
		return 0, false
	}
	return sm.Ratio(), true
}

// Levenshtein scores with 1 - distance/maxLen over characters.
type Levenshtein struct{}

// Name implements Scorer.
func (Levenshtein) Name() string { return AlgorithmLevenshtein }

// Score implements Scorer.
func (Levenshtein) Score(query, title []string, cutoff float64) (float64, bool) {
	maxLen := len(query)
	if len(title) > maxLen {
		maxLen = len(title)
	}
	if maxLen == 0 {
		return 1, true
	}

	// Length difference is a lower bound on the distance.
	diff := len(query) - len(title)
	if diff < 0 {
		diff = -diff
	}
	if 1-float64(diff)/float64(maxLen) < cutoff {
		return 0, false
	}

	dist := levenshtein.ComputeDistance(strings.Join(query, ""), strings.Join(title, ""))
	return 1 - float64(dist)/float64(maxLen), true
}

// ParseAlgorithm returns the scorer for name.
func ParseAlgorithm(name string) (Scorer, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmSequence:
		return Sequence{}, true
	case AlgorithmLevenshtein:
		return Levenshtein{}, true
	default:
		return nil, false
	}
}
