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

// runEvery calls job every interval until ctx is canceled. Job errors are
// logged and the loop keeps going; only cancellation ends it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func runEvery(ctx context.Context, interval time.Duration, logger zerolog.Logger, job func(context.Context) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", interval).Msg("service running")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := job(ctx); err != nil {
				logger.Warn().Err(err).Msg("scheduled run failed")
			}
		}
	}
}
