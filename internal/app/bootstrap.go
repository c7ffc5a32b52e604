// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package app wires configuration into a ready similarity engine. The server
// and the CLI share it so both answer identically for the same config.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/store"
)

// Components holds everything built from a config.
type Components struct {
	Catalog   *catalog.Catalog
	Engine    *recommend.Engine
	Snapshots *store.BadgerSnapshotStore // nil when snapshots are disabled
}

// Close releases the snapshot store.
func (c *Components) Close() error {
	if c == nil || c.Snapshots == nil {
		return nil
	}
	return c.Snapshots.Close()
}

// EngineConfig maps the application config onto the engine's.
func EngineConfig(cfg *config.Config) recommend.Config {
	return recommend.Config{
		MaxCount: cfg.Recommend.MaxCount,
		Workers:  cfg.Recommend.Workers,
		Stemming: cfg.Recommend.Stemming,
		Match: recommend.MatchConfig{
			Algorithm:  cfg.Match.Algorithm,
			Candidates: cfg.Match.Candidates,
			Cutoff:     cfg.Match.Cutoff,
			IgnoreCase: cfg.Match.IgnoreCase,
		},
	}
}

// LoadCatalog reads the catalog from the configured source. For the sqlite
// source an empty database is seeded from the CSV at Dataset.Path first.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func LoadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	opts := catalog.Options{NAAsEmpty: cfg.Dataset.NAAsEmpty}

	switch cfg.Dataset.Source {
	case "", "csv":
		return catalog.LoadCSV(ctx, cfg.Dataset.Path, opts)
	case "sqlite":
		db, err := catalog.OpenSQLite(cfg.Dataset.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		n, err := db.Count(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 && cfg.Dataset.Path != "" {
			logger.Info().
				Str("csv", cfg.Dataset.Path).
				Str("db", cfg.Dataset.SQLitePath).
				Msg("catalog database is empty, importing csv")
			if _, err := Import(ctx, db, cfg.Dataset.Path, opts); err != nil {
				return nil, err
			}
		}
		return db.Load(ctx)
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}

// Import loads a CSV file and replaces the contents of db with it.
func Import(ctx context.Context, db *catalog.SQLiteStore, csvPath string, opts catalog.Options) (*catalog.Catalog, error) {
	cat, err := catalog.LoadCSV(ctx, csvPath, opts)
	if err != nil {
		return nil, err
	}
	if err := db.Import(ctx, cat); err != nil {
		return nil, fmt.Errorf("import %s: %w", csvPath, err)
	}
	return cat, nil
}

// Build loads the catalog, opens the snapshot store when enabled and builds
// the engine. The caller must Close the result.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Build(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Components, error) {
	cat, err := LoadCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, w := range cat.Warnings {
		logger.Warn().Int("row", w.Row).Str("reason", w.Message).Msg("catalog row warning")
	}

	c := &Components{Catalog: cat}
	opts := []recommend.Option{recommend.WithLogger(logger)}

	if cfg.Snapshot.Enabled {
		snaps, err := store.OpenBadger(store.Options{
			Path:           cfg.Snapshot.Path,
			GCDiscardRatio: cfg.Snapshot.GCDiscardRatio,
		})
		if err != nil {
			// Snapshots only save rebuild time; run without them.
			logger.Warn().Err(err).Str("path", cfg.Snapshot.Path).Msg("snapshot store unavailable")
		} else {
			c.Snapshots = snaps
			opts = append(opts, recommend.WithSnapshotStore(snaps))
		}
	}

	engine, err := recommend.Build(ctx, cat, EngineConfig(cfg), opts...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("build engine: %w", err), c.Close())
	}
	c.Engine = engine

	stats := engine.Stats()
	metrics.RecordEngineBuild(stats.Items, stats.VocabularySize, stats.BuildDuration, stats.SnapshotHit)
	return c, nil
}
