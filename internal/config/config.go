// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package config loads Marquee configuration from built-in defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

import (
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Match     MatchConfig     `koanf:"match"`
	API       APIConfig       `koanf:"api"`
	Snapshot  SnapshotConfig  `koanf:"snapshot"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// DatasetConfig selects where the movie catalog is read from.
type DatasetConfig struct {
	// Source is "csv" (default) or "sqlite".
	Source string `koanf:"source"`

	// Path is the CSV file. It is also the import source for the sqlite store.
	Path string `koanf:"path"`

	// SQLitePath is the catalog database used when Source is "sqlite".
	SQLitePath string `koanf:"sqlite_path"`

	// NAAsEmpty treats pandas-style NA markers (NaN, null, N/A) as missing values.
	NAAsEmpty bool `koanf:"na_as_empty"`
}

// RecommendConfig holds similarity engine settings.
type RecommendConfig struct {
	// DefaultCount is the number of titles returned when a caller does not ask
	// for a specific amount. The HTTP layer has its own default (api.default_count).
	DefaultCount int `koanf:"default_count"`

	// MaxCount bounds the number of titles a single request may ask for.
	MaxCount int `koanf:"max_count"`

	// Workers is the number of goroutines computing similarity rows.
	// 0 = runtime.GOMAXPROCS(0).
	Workers int `koanf:"workers"`

	// Stemming reduces tokens to Snowball English stems before weighting.
	Stemming bool `koanf:"stemming"`
}

// MatchConfig controls how a free-form query is resolved to a catalog title.
type MatchConfig struct {
	// Algorithm is "sequence" (longest matching blocks ratio) or "levenshtein".
	Algorithm string `koanf:"algorithm"`

	// Candidates is the maximum number of close matches considered.
	Candidates int `koanf:"candidates"`

	// Cutoff is the minimum similarity in [0, 1] for a title to count as a match.
	Cutoff float64 `koanf:"cutoff"`

	// IgnoreCase compares titles case-insensitively.
	IgnoreCase bool `koanf:"ignore_case"`
}

// APIConfig holds HTTP API behaviour.
type APIConfig struct {
	// DefaultCount is used when the num query parameter is omitted.
	DefaultCount int `koanf:"default_count"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// SnapshotConfig controls the on-disk similarity matrix snapshot.
type SnapshotConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`

	// GCInterval is how often the value log garbage collector runs.
	GCInterval time.Duration `koanf:"gc_interval"`

	// GCDiscardRatio is passed to badger's RunValueLogGC.
	GCDiscardRatio float64 `koanf:"gc_discard_ratio"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, the first config file found and
// environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf("")
}
