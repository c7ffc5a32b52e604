// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/app"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// errNoMatch mirrors the HTTP API's not-found message.
var errNoMatch = errors.New("No matching movies found.") //nolint:staticcheck // user-facing sentence

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var count int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "List movies similar to a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("num") {
				count = cfg.Recommend.DefaultCount
			}
			title := strings.Join(args, " ")

			return ctx.withEngine(cmd.Context(), func(c *app.Components) error {
				out, err := c.Engine.Recommend(cmd.Context(), recommend.Request{Title: title, Count: count})
				if err != nil {
					return err
				}
				if out.Status == recommend.NotFound {
					return errNoMatch
				}

				if asJSON {
					return writeJSON(cmd, models.RecommendResponse{
						RecommendedMovies: out.Titles(),
						MatchedTitle:      out.Match.Title,
					})
				}

				if out.Match.Title != title {
					fmt.Fprintf(cmd.ErrOrStderr(), "Showing results for %q (match %.2f)\n", out.Match.Title, out.Match.Score)
				}
				rows := make([][]string, len(out.Items))
				for i, item := range out.Items {
					rows[i] = []string{strconv.Itoa(i + 1), item.Title, strconv.FormatFloat(float64(item.Score), 'f', 4, 32)}
				}
				writeRows(cmd, []string{"#", "Title", "Score"}, rows, []columnAlignment{alignRight, alignLeft, alignRight})
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "num", "n", 0, "Number of recommendations (default recommend.default_count)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the HTTP API response body")
	return cmd
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Show catalog titles close to a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			return ctx.withEngine(cmd.Context(), func(c *app.Components) error {
				candidates, err := c.Engine.Match(cmd.Context(), query, limit)
				if err != nil {
					return err
				}

				resp := models.TitleMatchResponse{Query: query, Matches: make([]models.TitleMatch, len(candidates))}
				for i, cand := range candidates {
					resp.Matches[i] = models.TitleMatch{Title: cand.Title, Score: cand.Score}
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				if len(candidates) == 0 {
					return errNoMatch
				}

				rows := make([][]string, len(resp.Matches))
				for i, m := range resp.Matches {
					rows[i] = []string{m.Title, strconv.FormatFloat(m.Score, 'f', 4, 64)}
				}
				writeRows(cmd, []string{"Title", "Score"}, rows, []columnAlignment{alignLeft, alignRight})
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum matches (default match.candidates)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Describe the catalog and similarity model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(cmd.Context(), func(c *app.Components) error {
				s := c.Engine.Stats()
				stats := api.ToEngineStats(&s)
				if asJSON {
					return writeJSON(cmd, stats)
				}

				rows := [][]string{
					{"Source", stats.Source},
					{"Items", strconv.Itoa(stats.Items)},
					{"Duplicate titles", strconv.Itoa(stats.DuplicateTitles)},
					{"Vocabulary", strconv.Itoa(stats.VocabularySize)},
					{"Non-zero weights", strconv.Itoa(stats.NonZeroFeatures)},
					{"Match algorithm", stats.MatchAlgorithm},
					{"Snapshot hit", yesNo(stats.SnapshotHit)},
					{"Build time", s.BuildDuration.Round(time.Millisecond).String()},
					{"Fingerprint", stats.Fingerprint},
				}
				writeRows(cmd, []string{"Field", "Value"}, rows, nil)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the dataset CSV into the SQLite catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Dataset.SQLitePath
			}

			db, err := catalog.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			cat, err := app.Import(cmd.Context(), db, cfg.Dataset.Path, catalog.Options{NAAsEmpty: cfg.Dataset.NAAsEmpty})
			if err != nil {
				return err
			}

			for _, w := range cat.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %s\n", w.Row, w.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d movies from %s into %s\n", cat.Len(), cfg.Dataset.Path, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalog path (default dataset.sqlite_path)")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
