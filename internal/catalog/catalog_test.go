// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"reflect"
	"testing"
)

func testItems() []Item {
	return []Item{
		{Title: "Inception", Genres: "Action Sci-Fi", Keywords: "dream heist", Tagline: "Your mind is the scene of the crime", Cast: "Leonardo DiCaprio", Director: "Christopher Nolan"},
		{Title: "Interstellar", Genres: "Sci-Fi Drama", Keywords: "space wormhole", Cast: "Matthew McConaughey", Director: "Christopher Nolan"},
		{Title: "The Dark Knight", Genres: "Action Crime", Keywords: "joker", Cast: "Christian Bale", Director: "Christopher Nolan"},
	}
}

func TestNew_ReindexesItems(t *testing.T) {
	t.Parallel()

	items := testItems()
	items[0].Index = 42
	cat := New(items, "test")

	for i, it := range cat.Items {
		if it.Index != i {
			t.Errorf("item %d has Index %d", i, it.Index)
		}
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
	if cat.Source != "test" {
		t.Errorf("Source = %q", cat.Source)
	}
}

func TestItem_Features(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "all fields",
			item: Item{Genres: "g", Keywords: "k", Tagline: "t", Cast: "c", Director: "d"},
			want: "g k t c d",
		},
		{
			name: "missing fields keep separators",
			item: Item{Genres: "Drama", Director: "Nolan"},
			want: "Drama    Nolan",
		},
		{
			name: "all empty",
			item: Item{},
			want: "    ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.item.Features(); got != tt.want {
				t.Errorf("Features() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalog_CorpusAndTitles(t *testing.T) {
	t.Parallel()

	cat := New(testItems(), "test")

	titles := cat.Titles()
	want := []string{"Inception", "Interstellar", "The Dark Knight"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Titles() = %v, want %v", titles, want)
	}

	corpus := cat.Corpus()
	if len(corpus) != cat.Len() {
		t.Fatalf("corpus length %d, want %d", len(corpus), cat.Len())
	}
	if corpus[1] != "Sci-Fi Drama space wormhole  Matthew McConaughey Christopher Nolan" {
		t.Errorf("corpus[1] = %q", corpus[1])
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	t.Parallel()

	items := testItems()
	items = append(items, Item{Title: "Inception", Genres: "Remake"})
	cat := New(items, "test")

	idx, ok := cat.IndexOf("Inception")
	if !ok || idx != 0 {
		t.Errorf("IndexOf(Inception) = %d, %v; want first occurrence 0", idx, ok)
	}
	if _, ok := cat.IndexOf("inception"); ok {
		t.Error("IndexOf should be case-sensitive")
	}
	if idx, ok := cat.IndexOf("Memento"); ok || idx != -1 {
		t.Errorf("IndexOf(Memento) = %d, %v", idx, ok)
	}
}

func TestCatalog_Duplicates(t *testing.T) {
	t.Parallel()

	cat := New([]Item{
		{Title: "B"},
		{Title: "A"},
		{Title: ""},
		{Title: "B"},
		{Title: ""},
		{Title: "A"},
		{Title: "C"},
		{Title: "B"},
	}, "test")

	got := cat.Duplicates()
	want := []Duplicate{
		{Title: "B", Indices: []int{0, 3, 7}},
		{Title: "A", Indices: []int{1, 5}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Duplicates() = %+v, want %+v", got, want)
	}
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := New(testItems(), "a")
	b := New(testItems(), "b")
	if a.Fingerprint != b.Fingerprint {
		t.Error("fingerprint should not depend on the source name")
	}
	if len(a.Fingerprint) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a.Fingerprint))
	}

	changed := testItems()
	changed[2].Tagline = "Why so serious?"
	if New(changed, "a").Fingerprint == a.Fingerprint {
		t.Error("fingerprint should change with content")
	}

	// Moving text between fields must change the hash.
	x := New([]Item{{Title: "ab", Genres: ""}}, "x")
	y := New([]Item{{Title: "a", Genres: "b"}}, "y")
	if x.Fingerprint == y.Fingerprint {
		t.Error("field boundaries should be part of the fingerprint")
	}
}
