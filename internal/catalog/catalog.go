// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package catalog loads the movie catalog and prepares the text corpus the
// similarity engine is built from.
//
// Row order is significant: Item.Index, the corpus, and every matrix built
// from them share the same ordering, and the index is the only join key.
package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// RequiredColumns are the dataset columns the loader needs.
var RequiredColumns = []string{"title", "genres", "keywords", "tagline", "cast", "director"}

var (
	// ErrMissingColumns is returned when the dataset lacks a required column.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrNoHeader is returned for an empty dataset file.
	ErrNoHeader = errors.New("empty file: no header row found")
)

// Item is one movie.
type Item struct {
	Index    int
	Title    string
	Genres   string
	Keywords string
	Tagline  string
	Cast     string
	Director string
}

// Features returns the five text attributes joined by single spaces.
func (it *Item) Features() string {
	return it.Genres + " " + it.Keywords + " " + it.Tagline + " " + it.Cast + " " + it.Director
}

// Warning is a non-fatal problem found while loading.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Duplicate is a title that occurs on more than one row.
type Duplicate struct {
	Title   string
	Indices []int
}

// Catalog is an ordered, read-only list of items.
type Catalog struct {
	Items       []Item
	Source      string
	Fingerprint string
	Warnings    []Warning
}

// Source loads a catalog.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// New builds a catalog from items, renumbering Index to match slice order.
func New(items []Item, source string) *Catalog {
	for i := range items {
		items[i].Index = i
	}
	return &Catalog{
		Items:       items,
		Source:      source,
		Fingerprint: fingerprint(items),
	}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.Items)
}

// Titles returns the titles in row order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.Items))
	for i := range c.Items {
		titles[i] = c.Items[i].Title
	}
	return titles
}

// Corpus returns one feature string per item, in row order.
func (c *Catalog) Corpus() []string {
	return BuildCorpus(c.Items)
}

// BuildCorpus concatenates each item's genres, keywords, tagline, cast and
// director with single spaces.
func BuildCorpus(items []Item) []string {
	corpus := make([]string, len(items))
	for i := range items {
		corpus[i] = items[i].Features()
	}
	return corpus
}

// IndexOf returns the first row whose title equals title.
func (c *Catalog) IndexOf(title string) (int, bool) {
	for i := range c.Items {
		if c.Items[i].Title == title {
			return i, true
		}
	}
	return -1, false
}

// Duplicates lists titles that appear on more than one row, ordered by first
// occurrence. Empty titles are ignored.
func (c *Catalog) Duplicates() []Duplicate {
	positions := make(map[string][]int)
	order := make([]string, 0)
	for i := range c.Items {
		title := c.Items[i].Title
		if title == "" {
			continue
		}
		if _, seen := positions[title]; !seen {
			order = append(order, title)
		}
		positions[title] = append(positions[title], i)
	}

	var dups []Duplicate
	for _, title := range order {
		if idx := positions[title]; len(idx) > 1 {
			dups = append(dups, Duplicate{Title: title, Indices: idx})
		}
	}
	return dups
}

// fingerprint hashes the catalog content so derived artifacts can be keyed
// on it regardless of which source produced the catalog.
func fingerprint(items []Item) string {
	h := sha256.New()
	var b strings.Builder
	for i := range items {
		it := &items[i]
		b.Reset()
		for _, field := range []string{it.Title, it.Genres, it.Keywords, it.Tagline, it.Cast, it.Director} {
			b.WriteString(field)
			b.WriteByte(0x1f)
		}
		b.WriteByte(0x1e)
		h.Write([]byte(b.String()))
	}
	return hex.EncodeToString(h.Sum(nil))
}
