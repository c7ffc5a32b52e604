// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and stops when its context is canceled.

# Available Services

HTTPServerService wraps *http.Server. ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded drain timeout.

SnapshotGCService runs Badger value-log GC on the engine snapshot store at a
fixed interval and records each run in the snapshot GC metric.

CacheJanitorService sweeps expired entries from the recommendation response
cache.

# Usage

	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewSnapshotGCService(store, cfg.Snapshot.GCInterval, logger))
	tree.AddMaintenanceService(services.NewCacheJanitorService(handler, time.Minute, logger))
*/
package services
