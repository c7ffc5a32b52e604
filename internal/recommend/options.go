// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/recommend/similarity"
)

// SnapshotStore persists similarity matrices between runs. Keys identify
// both the catalog content and the options the matrix was built with.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (*similarity.Matrix, bool, error)
	Save(ctx context.Context, key string, m *similarity.Matrix) error
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger    zerolog.Logger
	snapshots SnapshotStore
}

// WithLogger sets the engine logger. The default discards output.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func WithLogger(logger zerolog.Logger) Option {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// WithSnapshotStore reuses a stored similarity matrix when one exists for
// the catalog, and stores freshly computed ones.
func WithSnapshotStore(store SnapshotStore) Option {
	return func(o *buildOptions) {
		o.snapshots = store
	}
}
