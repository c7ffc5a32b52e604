// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend answers "movies like this one" from item text alone.
//
// # Architecture
//
// Build runs once per catalog:
//
//   - text: lowercase, split into word tokens, drop English stop words
//   - tfidf: weight term counts by smoothed IDF, normalise each row
//   - similarity: dense all-pairs cosine matrix, computed in parallel
//   - match: index titles for fuzzy lookup
//
// The resulting Engine is immutable. Recommend resolves the query to the
// closest known title, ranks every other row by its similarity to that title
// and returns the top Count.
//
// # Usage
//
//	engine, err := recommend.Build(ctx, cat, recommend.DefaultConfig(),
//	    recommend.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	out, err := engine.Recommend(ctx, recommend.NewRequest("Inception"))
//	if err != nil {
//	    return err // *ValidationError, errors.Is(err, ErrInvalidRequest)
//	}
//	if out.Status == recommend.NotFound {
//	    // no title was close enough
//	}
//	titles := out.Titles()
//
// # Thread Safety
//
// Nothing is mutated after Build returns, so queries need no locks. Only the
// request counters are updated, atomically.
//
// # Duplicate titles
//
// When several rows share a title, the first row is the one that matches and
// every row with that title is left out of the results.
package recommend
