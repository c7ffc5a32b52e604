// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiringCache drops entries past their TTL and reports how many went.
type ExpiringCache interface {
	CleanupCache() int
}

// CacheJanitorService sweeps expired response cache entries. Lookups already
// ignore expired entries; the sweep only returns their memory.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates the sweep loop. A non-positive interval
// means 1m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cache ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	return runEvery(ctx, s.interval, s.logger, func(context.Context) error {
		if removed := s.cache.CleanupCache(); removed > 0 {
			s.logger.Debug().Int("removed", removed).Msg("expired cache entries removed")
		}
		return nil
	})
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return s.name
}
