// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
)

var (
	validLogLevels = map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	validLogFormats = map[string]bool{
		"json": true, "console": true,
	}
	validDatasetSources = map[string]bool{
		"csv": true, "sqlite": true,
	}
	validMatchAlgorithms = map[string]bool{
		"sequence": true, "levenshtein": true,
	}
	validEnvironments = map[string]bool{
		"development": true, "staging": true, "production": true,
	}
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateMatch(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSnapshot(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if !validDatasetSources[c.Dataset.Source] {
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, sqlite")
	}
	if c.Dataset.Source == "csv" && c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required when DATASET_SOURCE=csv")
	}
	if c.Dataset.Source == "sqlite" && c.Dataset.SQLitePath == "" {
		return fmt.Errorf("DATASET_SQLITE_PATH is required when DATASET_SOURCE=sqlite")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxCount < 1 {
		return fmt.Errorf("RECOMMEND_MAX_COUNT must be at least 1")
	}
	if c.Recommend.DefaultCount < 1 || c.Recommend.DefaultCount > c.Recommend.MaxCount {
		return fmt.Errorf("RECOMMEND_DEFAULT_COUNT must be between 1 and RECOMMEND_MAX_COUNT (%d)", c.Recommend.MaxCount)
	}
	if c.Recommend.Workers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must not be negative")
	}
	return nil
}

func (c *Config) validateMatch() error {
	if !validMatchAlgorithms[c.Match.Algorithm] {
		return fmt.Errorf("MATCH_ALGORITHM must be one of: sequence, levenshtein")
	}
	if c.Match.Candidates < 1 {
		return fmt.Errorf("MATCH_CANDIDATES must be at least 1")
	}
	if c.Match.Cutoff < 0 || c.Match.Cutoff > 1 {
		return fmt.Errorf("MATCH_CUTOFF must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultCount < 1 || c.API.DefaultCount > c.Recommend.MaxCount {
		return fmt.Errorf("API_DEFAULT_COUNT must be between 1 and RECOMMEND_MAX_COUNT (%d)", c.Recommend.MaxCount)
	}
	if c.API.CacheEnabled {
		if c.API.CacheSize < 1 {
			return fmt.Errorf("API_CACHE_SIZE must be at least 1 when the cache is enabled")
		}
		if c.API.CacheTTL <= 0 {
			return fmt.Errorf("API_CACHE_TTL must be positive when the cache is enabled")
		}
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQS must be at least 1")
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	if c.IsProduction() {
		for _, origin := range c.API.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	return nil
}

func (c *Config) validateSnapshot() error {
	if !c.Snapshot.Enabled {
		return nil
	}
	if c.Snapshot.Path == "" {
		return fmt.Errorf("SNAPSHOT_PATH is required when SNAPSHOT_ENABLED=true")
	}
	if c.Snapshot.GCInterval <= 0 {
		return fmt.Errorf("SNAPSHOT_GC_INTERVAL must be positive")
	}
	if c.Snapshot.GCDiscardRatio <= 0 || c.Snapshot.GCDiscardRatio >= 1 {
		return fmt.Errorf("SNAPSHOT_GC_DISCARD_RATIO must be between 0 and 1 (exclusive)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
