// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Match.Candidates != 3 || cfg.Match.Cutoff != 0.6 {
		t.Errorf("match defaults = %+v", cfg.Match)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero max count", func(c *Config) { c.MaxCount = 0 }, "max_count"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"unknown algorithm", func(c *Config) { c.Match.Algorithm = "soundex" }, "match.algorithm"},
		{"zero candidates", func(c *Config) { c.Match.Candidates = 0 }, "match.candidates"},
		{"cutoff above one", func(c *Config) { c.Match.Cutoff = 1.1 }, "match.cutoff"},
		{"negative cutoff", func(c *Config) { c.Match.Cutoff = -0.1 }, "match.cutoff"},
		{"levenshtein ok", func(c *Config) { c.Match.Algorithm = "levenshtein" }, ""},
		{"empty algorithm means sequence", func(c *Config) { c.Match.Algorithm = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
