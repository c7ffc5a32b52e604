// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

const moviesCSV = `index,title,genres,keywords,tagline,cast,director
0,Inception,Action Sci-Fi,dream heist,Your mind is the scene of the crime,Leonardo DiCaprio,Christopher Nolan
1,Interstellar,Sci-Fi Drama,space wormhole,,Matthew McConaughey,Christopher Nolan
2,Amelie,Comedy Romance,paris cafe,,Audrey Tautou,Jean-Pierre Jeunet
3,Paddington,Comedy Family,bear london marmalade,,Ben Whishaw,Paul King
`

type cliTestEnv struct {
	csvPath    string
	dbPath     string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		csvPath:    filepath.Join(base, "movies.csv"),
		dbPath:     filepath.Join(base, "catalog", "movies.db"),
		configPath: filepath.Join(base, "config.yaml"),
	}
	if err := os.WriteFile(env.csvPath, []byte(moviesCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	yaml := fmt.Sprintf("dataset:\n  path: %q\n  sqlite_path: %q\nsnapshot:\n  enabled: false\n", env.csvPath, env.dbPath)
	if err := os.WriteFile(env.configPath, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIRecommend(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "Inception", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "1\tInterstellar\t") {
		t.Errorf("first line = %q, want Interstellar ranked first", lines[0])
	}
	if strings.Contains(out, "Inception") {
		t.Errorf("query title must not be recommended: %q", out)
	}
}

func TestCLIRecommend_JSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, stderr, err := runCLI(t, []string{"recommend", "Inceptoin", "-n", "1", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend --json: %v", err)
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if resp.MatchedTitle != "Inception" {
		t.Errorf("matched_title = %q, want Inception", resp.MatchedTitle)
	}
	if len(resp.RecommendedMovies) != 1 || resp.RecommendedMovies[0] != "Interstellar" {
		t.Errorf("recommended_movies = %v", resp.RecommendedMovies)
	}
	if stderr != "" {
		t.Errorf("json mode should not print the match notice, got %q", stderr)
	}
}

func TestCLIRecommend_FuzzyNotice(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, []string{"recommend", "Inceptoin"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(stderr, `Showing results for "Inception"`) {
		t.Errorf("expected match notice on stderr, got %q", stderr)
	}
}

func TestCLIRecommend_NoMatch(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"recommend", "zzzzzzzzzz"}, env.configPath)
	if err == nil || err.Error() != "No matching movies found." {
		t.Errorf("expected no match error, got %v", err)
	}
}

func TestCLIRecommend_InvalidCount(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"zero", []string{"recommend", "Inception", "-n", "0"}},
		{"negative", []string{"recommend", "Inception", "--num=-5"}},
		{"above max", []string{"recommend", "Inception", "-n", "1000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, env.configPath)
			if !errors.Is(err, recommend.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if out != "" {
				t.Errorf("no results expected on a rejected count, got %q", out)
			}
		})
	}
}

func TestCLIRecommend_DefaultCount(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "Inception"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	// Three other movies exist, fewer than the configured default.
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 3 {
		t.Errorf("got %d lines, want 3: %q", len(lines), out)
	}
}

func TestCLIMatch(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"match", "Interstelar", "-l", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !strings.HasPrefix(out, "Interstellar\t") {
		t.Errorf("match output = %q", out)
	}

	out, _, err = runCLI(t, []string{"match", "zzzzzzzzzz", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("match --json with no result should not fail: %v", err)
	}
	var resp models.TitleMatchResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Matches) != 0 {
		t.Errorf("expected no matches, got %v", resp.Matches)
	}
}

func TestCLIStats(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"stats", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var stats models.EngineStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Items != 4 || stats.MatchAlgorithm == "" || stats.Fingerprint == "" {
		t.Errorf("unexpected stats: %+v", stats)
	}

	out, _, err = runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Items\t4") {
		t.Errorf("plain stats missing item count: %q", out)
	}
}

func TestCLIImport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"import"}, env.configPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Imported 4 movies") {
		t.Errorf("import output = %q", out)
	}
	if _, err := os.Stat(env.dbPath); err != nil {
		t.Fatalf("database not created: %v", err)
	}

	// The imported catalog answers queries without the CSV.
	if err := os.Remove(env.csvPath); err != nil {
		t.Fatalf("remove csv: %v", err)
	}
	t.Setenv("DATASET_SOURCE", "sqlite")
	out, _, err = runCLI(t, []string{"recommend", "Amelie", "-n", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend from sqlite: %v", err)
	}
	if !strings.HasPrefix(out, "1\tPaddington\t") {
		t.Errorf("recommend from sqlite = %q", out)
	}
}

func TestCLIDatasetFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, _, err := runCLI(t, []string{"--dataset", missing, "stats"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "missing.csv") {
		t.Errorf("expected error naming the overridden dataset, got %v", err)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"#", "Title"}, [][]string{{"1", "Interstellar"}, {"2"}}, []columnAlignment{alignRight})
	for _, want := range []string{"Title", "Interstellar", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Error("empty headers should render nothing")
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
