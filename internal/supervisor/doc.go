// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervisor tree.

The engine itself is built before the tree starts and never changes, so the
tree only holds the things that loop:

	marquee (root)
	├── maintenance-layer
	│   ├── snapshot-gc      badger value-log GC (when snapshots are enabled)
	│   └── cache-janitor    expires stale response cache entries
	└── api-layer
	    └── http-server      chi router behind net/http

Services that return an error are restarted with suture's backoff. Failures
in one layer never restart the other.

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog, fed by the zerolog slog adapter from internal/logging:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

The service wrappers live in the services subpackage.
*/
package supervisor
