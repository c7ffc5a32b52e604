// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Dataset.Source != "csv" {
		t.Errorf("Dataset.Source = %q, want csv", cfg.Dataset.Source)
	}
	if cfg.Recommend.DefaultCount != 10 {
		t.Errorf("Recommend.DefaultCount = %d, want 10", cfg.Recommend.DefaultCount)
	}
	if cfg.API.DefaultCount != 5 {
		t.Errorf("API.DefaultCount = %d, want 5", cfg.API.DefaultCount)
	}
	if cfg.Match.Candidates != 3 || cfg.Match.Cutoff != 0.6 {
		t.Errorf("Match = %+v, want 3 candidates at cutoff 0.6", cfg.Match)
	}
	if cfg.Snapshot.Enabled {
		t.Error("Snapshot.Enabled should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DATASET_PATH", "dataset.path"},
		{"MATCH_CUTOFF", "match.cutoff"},
		{"DISABLE_RATE_LIMIT", "api.rate_limit_disabled"},
		{"SNAPSHOT_GC_INTERVAL", "snapshot.gc_interval"},
		{"log_level", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: {}"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Remove(filepath.Join(dir, "config.yaml")) })

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("env var takes precedence", func(t *testing.T) {
		custom := writeConfigFile(t, "server: {}")
		t.Setenv(ConfigPathEnvVar, custom)
		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("env var with missing file falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DATASET_PATH", "/srv/movies.csv")
	t.Setenv("MATCH_CUTOFF", "0.75")
	t.Setenv("MATCH_IGNORE_CASE", "true")
	t.Setenv("API_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf(writeConfigFile(t, "logging:\n  format: json\n"))
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "/srv/movies.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Match.Cutoff != 0.75 {
		t.Errorf("Match.Cutoff = %v, want 0.75", cfg.Match.Cutoff)
	}
	if !cfg.Match.IgnoreCase {
		t.Error("Match.IgnoreCase should be true")
	}
	if cfg.API.CacheTTL != 90*time.Second {
		t.Errorf("API.CacheTTL = %v, want 90s", cfg.API.CacheTTL)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.API.CORSOrigins, wantOrigins) {
		t.Errorf("API.CORSOrigins = %v, want %v", cfg.API.CORSOrigins, wantOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	path := writeConfigFile(t, `
server:
  port: 8888
  host: "127.0.0.1"
dataset:
  source: sqlite
  sqlite_path: /var/lib/marquee/movies.db
recommend:
  max_count: 50
  stemming: true
match:
  algorithm: levenshtein
snapshot:
  enabled: true
  path: /var/lib/marquee/snapshot
logging:
  level: warn
`)

	cfg, err := LoadWithKoanf(path)
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Dataset.Source != "sqlite" || cfg.Dataset.SQLitePath != "/var/lib/marquee/movies.db" {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Recommend.MaxCount != 50 || !cfg.Recommend.Stemming {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Match.Algorithm != "levenshtein" {
		t.Errorf("Match.Algorithm = %q", cfg.Match.Algorithm)
	}
	if !cfg.Snapshot.Enabled || cfg.Snapshot.GCInterval != time.Hour {
		t.Errorf("Snapshot = %+v", cfg.Snapshot)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Recommend.DefaultCount != 10 {
		t.Errorf("Recommend.DefaultCount = %d, want default 10", cfg.Recommend.DefaultCount)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := LoadWithKoanf(writeConfigFile(t, "server:\n  port: 8000\n"))
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want env value 7000", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad port", "server:\n  port: 70000\n", "HTTP_PORT"},
		{"bad source", "dataset:\n  source: parquet\n", "DATASET_SOURCE"},
		{"bad algorithm", "match:\n  algorithm: soundex\n", "MATCH_ALGORITHM"},
		{"cutoff above one", "match:\n  cutoff: 1.5\n", "MATCH_CUTOFF"},
		{"default above max", "recommend:\n  default_count: 20\n  max_count: 10\n", "RECOMMEND_DEFAULT_COUNT"},
		{"bad log level", "logging:\n  level: verbose\n", "LOG_LEVEL"},
		{"missing file", "", "failed to load config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.content != "" {
				path = writeConfigFile(t, tt.content)
			}

			_, err := LoadWithKoanf(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
