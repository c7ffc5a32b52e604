// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/recommend/match"
)

// DefaultCount is the number of recommendations NewRequest asks for.
const DefaultCount = 10

// Config contains all configuration for the engine.
type Config struct {
	// MaxCount bounds Request.Count.
	MaxCount int `json:"max_count"`

	// Workers is the similarity goroutine count. 0 = GOMAXPROCS.
	Workers int `json:"workers"`

	// Stemming enables Snowball English stemming of tokens.
	Stemming bool `json:"stemming"`

	// Match controls query resolution.
	Match MatchConfig `json:"match"`
}

// MatchConfig contains fuzzy title matching parameters.
type MatchConfig struct {
	// Algorithm is "sequence" or "levenshtein".
	Algorithm string `json:"algorithm"`

	// Candidates is how many close matches are considered. Only the best is
	// used for recommendations.
	Candidates int `json:"candidates"`

	// Cutoff is the minimum score in [0, 1].
	Cutoff float64 `json:"cutoff"`

	IgnoreCase bool `json:"ignore_case"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MaxCount: 100,
		Workers:  0,
		Match: MatchConfig{
			Algorithm:  match.AlgorithmSequence,
			Candidates: match.DefaultCandidates,
			Cutoff:     match.DefaultCutoff,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxCount < 1 {
		return fmt.Errorf("max_count must be positive, got %d", c.MaxCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if _, ok := match.ParseAlgorithm(c.Match.Algorithm); !ok {
		return fmt.Errorf("match.algorithm must be sequence or levenshtein, got %q", c.Match.Algorithm)
	}
	if c.Match.Candidates < 1 {
		return fmt.Errorf("match.candidates must be positive, got %d", c.Match.Candidates)
	}
	if c.Match.Cutoff < 0 || c.Match.Cutoff > 1 {
		return fmt.Errorf("match.cutoff must be in [0, 1], got %f", c.Match.Cutoff)
	}
	return nil
}
