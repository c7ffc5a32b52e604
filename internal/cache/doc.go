// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package cache provides the in-memory data structures the API layer keeps in
// front of the similarity engine.
//
//   - LRU: generic least recently used cache with TTL, used for rendered
//     recommendation responses keyed by (title, count).
//   - TitleTrie: read-only prefix tree over catalog titles for autocomplete.
//
// Both are safe for concurrent use. The engine itself is immutable, so
// cached responses never go stale for the lifetime of a process; the TTL only
// bounds memory held by rarely requested titles.
package cache
