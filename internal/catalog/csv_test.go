// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `index,title,genres,keywords,tagline,cast,director
0,Inception,Action Sci-Fi,dream heist,Your mind is the scene of the crime,Leonardo DiCaprio,Christopher Nolan
1,Interstellar,Sci-Fi Drama,space wormhole,,Matthew McConaughey,Christopher Nolan
2,The Dark Knight,Action Crime,joker,"Why so serious?",Christian Bale,Christopher Nolan
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "movies.csv", []byte(sampleCSV))
	cat, err := LoadCSV(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}
	if cat.Source != path {
		t.Errorf("Source = %q, want %q", cat.Source, path)
	}
	if got := cat.Items[1].Tagline; got != "" {
		t.Errorf("missing tagline = %q, want empty", got)
	}
	if got := cat.Items[2].Tagline; got != "Why so serious?" {
		t.Errorf("quoted tagline = %q", got)
	}
	if got := cat.Items[2].Index; got != 2 {
		t.Errorf("Index = %d, want 2", got)
	}
	if len(cat.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", cat.Warnings)
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), Options{})
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bad.csv", []byte("title,genres\nInception,Action\n"))
		_, err := LoadCSV(context.Background(), path, Options{})
		if !errors.Is(err, ErrMissingColumns) {
			t.Fatalf("err = %v, want ErrMissingColumns", err)
		}
		for _, col := range []string{"keywords", "tagline", "cast", "director"} {
			if !strings.Contains(err.Error(), col) {
				t.Errorf("error %q does not name column %s", err, col)
			}
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "empty.csv", nil)
		_, err := LoadCSV(context.Background(), path, Options{})
		if !errors.Is(err, ErrNoHeader) {
			t.Fatalf("err = %v, want ErrNoHeader", err)
		}
	})
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	cat, err := ParseCSV(context.Background(), strings.NewReader("title,genres,keywords,tagline,cast,director\n"), "mem", Options{})
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
}

func TestParseCSV_ColumnMatching(t *testing.T) {
	t.Parallel()

	input := "\ufeffDirector, Title ,CAST,Tagline,Keywords,Genres,title\n" +
		"Nolan,Memento,Guy Pearce,,memory,Thriller,Ignored\n"

	cat, err := ParseCSV(context.Background(), strings.NewReader(input), "mem", Options{})
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	it := cat.Items[0]
	if it.Title != "Memento" {
		t.Errorf("Title = %q, want first matching column", it.Title)
	}
	if it.Director != "Nolan" || it.Cast != "Guy Pearce" || it.Genres != "Thriller" {
		t.Errorf("unexpected item %+v", it)
	}
}

func TestParseCSV_NAValues(t *testing.T) {
	t.Parallel()

	input := "title,genres,keywords,tagline,cast,director\n" +
		"Heat,NaN,null,N/A,Al Pacino,Michael Mann\n"

	tests := []struct {
		name    string
		opts    Options
		genres  string
		tagline string
	}{
		{name: "na as empty", opts: Options{NAAsEmpty: true}, genres: "", tagline: ""},
		{name: "na kept literally", opts: Options{}, genres: "NaN", tagline: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat, err := ParseCSV(context.Background(), strings.NewReader(input), "mem", tt.opts)
			if err != nil {
				t.Fatalf("ParseCSV: %v", err)
			}
			it := cat.Items[0]
			if it.Genres != tt.genres || it.Tagline != tt.tagline {
				t.Errorf("genres=%q tagline=%q, want %q %q", it.Genres, it.Tagline, tt.genres, tt.tagline)
			}
			if it.Cast != "Al Pacino" {
				t.Errorf("Cast = %q", it.Cast)
			}
		})
	}
}

func TestParseCSV_ShortRowWarns(t *testing.T) {
	t.Parallel()

	input := "title,genres,keywords,tagline,cast,director\n" +
		"Alien,Horror\n" +
		"Aliens,Action,marines,,Sigourney Weaver,James Cameron\n"

	cat, err := ParseCSV(context.Background(), strings.NewReader(input), "mem", Options{})
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if cat.Items[0].Director != "" {
		t.Errorf("short row director = %q, want empty", cat.Items[0].Director)
	}
	if len(cat.Warnings) != 1 || cat.Warnings[0].Row != 2 {
		t.Errorf("warnings = %+v, want one on row 2", cat.Warnings)
	}
}

func TestParseCSV_NormalizesTitles(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent.
	input := "title,genres,keywords,tagline,cast,director\n" +
		"  Ame\u0301lie ,Romance,,,,\n"

	cat, err := ParseCSV(context.Background(), strings.NewReader(input), "mem", Options{})
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if got := cat.Items[0].Title; got != "Am\u00e9lie" {
		t.Errorf("Title = %q, want NFC composed form", got)
	}
}

func TestLoadCSV_Latin1(t *testing.T) {
	t.Parallel()

	data := []byte("title,genres,keywords,tagline,cast,director\nAm\xe9lie,Romance,,,Audrey Tautou,Jean-Pierre Jeunet\n")
	path := writeFile(t, "latin1.csv", data)

	cat, err := LoadCSV(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if got := cat.Items[0].Title; got != "Amélie" {
		t.Errorf("Title = %q, want Amélie", got)
	}
}

func TestCSVSource_Load(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "movies.csv", []byte(sampleCSV))
	var src Source = CSVSource{Path: path}
	cat, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
}
