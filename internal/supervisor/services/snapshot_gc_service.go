// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
)

// GarbageCollector reclaims space in the snapshot store.
type GarbageCollector interface {
	RunGC() error
}

// SnapshotGCService periodically runs value-log GC on the snapshot store.
// Saving a snapshot drops the previous one, so without GC the value log
// only grows across catalog changes.
type SnapshotGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSnapshotGCService creates the GC loop. A non-positive interval means 1h.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *SnapshotGCService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SnapshotGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "snapshot-gc").Logger(),
		name:     "snapshot-gc",
	}
}

// Serve implements suture.Service.
func (s *SnapshotGCService) Serve(ctx context.Context) error {
	return runEvery(ctx, s.interval, s.logger, s.collect)
}

func (s *SnapshotGCService) collect(context.Context) error {
	start := time.Now()
	err := s.store.RunGC()
	metrics.RecordSnapshotGC(err)
	if err != nil {
		return err
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("snapshot gc complete")
	return nil
}

// String returns the service name for logging.
func (s *SnapshotGCService) String() string {
	return s.name
}
