// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "MARQUEE_CONFIG"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			Source:     "csv",
			Path:       "data/movies.csv",
			SQLitePath: "data/movies.db",
			NAAsEmpty:  true,
		},
		Recommend: RecommendConfig{
			DefaultCount: 10,
			MaxCount:     100,
			Workers:      0,
			Stemming:     false,
		},
		Match: MatchConfig{
			Algorithm:  "sequence",
			Candidates: 3,
			Cutoff:     0.6,
			IgnoreCase: false,
		},
		API: APIConfig{
			DefaultCount:    5,
			CacheEnabled:    true,
			CacheSize:       1024,
			CacheTTL:        10 * time.Minute,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Snapshot: SnapshotConfig{
			Enabled:        false,
			Path:           "data/snapshot",
			GCInterval:     time.Hour,
			GCDiscardRatio: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Built-in defaults
//  2. YAML config file: path if non-empty, else MARQUEE_CONFIG, else DefaultConfigPaths
//  3. Environment variables (see envTransformFunc)
//
// The result is validated before it is returned.
func LoadWithKoanf(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"dataset_source":      "dataset.source",
	"dataset_path":        "dataset.path",
	"dataset_sqlite_path": "dataset.sqlite_path",
	"dataset_na_as_empty": "dataset.na_as_empty",

	"recommend_default_count": "recommend.default_count",
	"recommend_max_count":     "recommend.max_count",
	"recommend_workers":       "recommend.workers",
	"recommend_stemming":      "recommend.stemming",

	"match_algorithm":   "match.algorithm",
	"match_candidates":  "match.candidates",
	"match_cutoff":      "match.cutoff",
	"match_ignore_case": "match.ignore_case",

	"api_default_count":  "api.default_count",
	"api_cache_enabled":  "api.cache_enabled",
	"api_cache_size":     "api.cache_size",
	"api_cache_ttl":      "api.cache_ttl",
	"rate_limit_reqs":    "api.rate_limit_reqs",
	"rate_limit_window":  "api.rate_limit_window",
	"disable_rate_limit": "api.rate_limit_disabled",
	"cors_origins":       "api.cors_origins",

	"snapshot_enabled":          "snapshot.enabled",
	"snapshot_path":             "snapshot.path",
	"snapshot_gc_interval":      "snapshot.gc_interval",
	"snapshot_gc_discard_ratio": "snapshot.gc_discard_ratio",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to a koanf path.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DATASET_PATH -> dataset.path
//   - MATCH_CUTOFF -> match.cutoff
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
