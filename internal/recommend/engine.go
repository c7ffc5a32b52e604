// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/recommend/match"
	"github.com/tomtom215/marquee/internal/recommend/similarity"
	"github.com/tomtom215/marquee/internal/recommend/text"
	"github.com/tomtom215/marquee/internal/recommend/tfidf"
)

// snapshotVersion changes whenever the matrix layout or weighting changes.
const snapshotVersion = "v1"

// Engine answers recommendation queries against one catalog.
// It is immutable after Build and safe for concurrent use.
type Engine struct {
	config Config
	logger zerolog.Logger

	catalog *catalog.Catalog
	titles  []string
	model   *tfidf.Model
	sim     *similarity.Matrix
	matcher *match.Matcher

	duplicates    int
	builtAt       time.Time
	buildDuration time.Duration
	snapshotHit   bool

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
}

// Stats describes a built engine.
type Stats struct {
	Items           int
	VocabularySize  int
	NonZeroFeatures int
	DuplicateTitles int
	Source          string
	Fingerprint     string
	MatchAlgorithm  string
	BuildDuration   time.Duration
	BuiltAt         time.Time
	SnapshotHit     bool
	Requests        int64
	NotFound        int64
}

// Build vectorizes the catalog and computes the similarity matrix.
// The catalog must not be modified afterwards. Only an invalid config or
// context cancellation makes Build fail; an empty catalog is valid.
//
//nolint:gocritic // hugeParam: cfg passed by value so the engine owns its copy
func Build(ctx context.Context, cat *catalog.Catalog, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	// Validate has checked the name.
	scorer, ok := match.ParseAlgorithm(cfg.Match.Algorithm)
	if !ok {
		return nil, fmt.Errorf("invalid config: unknown match algorithm %q", cfg.Match.Algorithm)
	}
	if cat == nil {
		cat = catalog.New(nil, "")
	}

	o := buildOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With().Str("component", "recommend").Logger()

	start := time.Now()

	tok := text.New(text.WithStemming(cfg.Stemming))
	model, err := tfidf.Fit(ctx, cat.Corpus(), tok)
	if err != nil {
		return nil, fmt.Errorf("fit tfidf: %w", err)
	}

	key := snapshotKey(cat.Fingerprint, cfg)
	sim, hit := loadSnapshot(ctx, o.snapshots, key, cat.Len(), logger)
	if sim == nil {
		sim, err = similarity.Compute(ctx, model.Rows, cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("compute similarity: %w", err)
		}
		if o.snapshots != nil {
			if saveErr := o.snapshots.Save(ctx, key, sim); saveErr != nil {
				logger.Warn().Err(saveErr).Str("key", key).Msg("failed to store similarity snapshot")
			}
		}
	}

	titles := cat.Titles()
	matcher := match.New(titles,
		match.WithScorer(scorer),
		match.WithIgnoreCase(cfg.Match.IgnoreCase),
	)

	dups := cat.Duplicates()
	if len(dups) > 0 {
		logger.Warn().
			Int("count", len(dups)).
			Str("example", dups[0].Title).
			Msg("catalog contains duplicate titles; the first row of each is used")
	}

	e := &Engine{
		config:        cfg,
		logger:        logger,
		catalog:       cat,
		titles:        titles,
		model:         model,
		sim:           sim,
		matcher:       matcher,
		duplicates:    len(dups),
		builtAt:       time.Now(),
		buildDuration: time.Since(start),
		snapshotHit:   hit,
	}

	logger.Info().
		Int("items", cat.Len()).
		Int("vocabulary", len(model.Terms)).
		Int("non_zero", model.NonZero()).
		Bool("snapshot_hit", hit).
		Dur("duration", e.buildDuration).
		Msg("similarity engine built")

	return e, nil
}

func snapshotKey(fingerprint string, cfg Config) string {
	stem := "plain"
	if cfg.Stemming {
		stem = "stem"
	}
	return fmt.Sprintf("%s:%s:%s", snapshotVersion, stem, fingerprint)
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func loadSnapshot(ctx context.Context, store SnapshotStore, key string, n int, logger zerolog.Logger) (*similarity.Matrix, bool) {
	if store == nil {
		return nil, false
	}
	m, ok, err := store.Load(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to load similarity snapshot, recomputing")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if m.Size() != n {
		logger.Warn().Int("snapshot_size", m.Size()).Int("items", n).Msg("similarity snapshot size mismatch, recomputing")
		return nil, false
	}
	return m, true
}

// Recommend resolves req.Title to the closest known title and returns the
// req.Count most similar other titles. An invalid request returns a
// *ValidationError; an unknown title is a NotFound outcome, not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (Outcome, error) {
	e.requestCount.Add(1)

	if err := req.Validate(e.config.MaxCount); err != nil {
		return Outcome{}, err
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	best, ok := e.matcher.Best(req.Title, e.config.Match.Candidates, e.config.Match.Cutoff)
	if !ok {
		e.notFoundCount.Add(1)
		e.logger.Debug().Str("title", req.Title).Msg("no close match")
		return Outcome{Status: NotFound}, nil
	}

	items := e.rank(best.Index, best.Title, req.Count)

	e.logger.Debug().
		Str("title", req.Title).
		Str("matched", best.Title).
		Float64("match_score", best.Score).
		Int("returned", len(items)).
		Msg("recommendation complete")

	return Outcome{
		Status: Found,
		Match:  MatchInfo{Title: best.Title, Index: best.Index, Score: best.Score},
		Items:  items,
	}, nil
}

type scoredRow struct {
	index int
	score float32
}

// rank orders all rows by similarity to row idx, highest first with ties in
// row order, skipping rows titled like the query and rows without a title.
func (e *Engine) rank(idx int, title string, count int) []Recommendation {
	row := e.sim.Row(idx)

	scored := make([]scoredRow, 0, len(row))
	for j, s := range row {
		if e.titles[j] == title || e.titles[j] == "" {
			continue
		}
		scored = append(scored, scoredRow{index: j, score: s})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	if len(scored) > count {
		scored = scored[:count]
	}

	out := make([]Recommendation, len(scored))
	for k, s := range scored {
		out[k] = Recommendation{Title: e.titles[s.index], Index: s.index, Score: s.score}
	}
	return out
}

// Match returns up to limit close matches for query with their scores.
// A non-positive limit uses the configured candidate count.
func (e *Engine) Match(ctx context.Context, query string, limit int) ([]match.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.config.Match.Candidates
	}
	return e.matcher.CloseMatches(query, limit, e.config.Match.Cutoff), nil
}

// Similarity returns the score between rows i and j.
func (e *Engine) Similarity(i, j int) float32 {
	return e.sim.At(i, j)
}

// Titles returns the catalog titles in row order. The slice must not be
// modified.
func (e *Engine) Titles() []string {
	return e.titles
}

// Len returns the number of catalog rows.
func (e *Engine) Len() int {
	return len(e.titles)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns build information and request counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Items:           len(e.titles),
		VocabularySize:  len(e.model.Terms),
		NonZeroFeatures: e.model.NonZero(),
		DuplicateTitles: e.duplicates,
		Source:          e.catalog.Source,
		Fingerprint:     e.catalog.Fingerprint,
		MatchAlgorithm:  e.matcher.Scorer().Name(),
		BuildDuration:   e.buildDuration,
		BuiltAt:         e.builtAt,
		SnapshotHit:     e.snapshotHit,
		Requests:        e.requestCount.Load(),
		NotFound:        e.notFoundCount.Load(),
	}
}
