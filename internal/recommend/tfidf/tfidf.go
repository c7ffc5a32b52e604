// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package tfidf weights documents by term frequency times smoothed inverse
// document frequency.
//
// The weighting matches the common smooth-idf formulation:
//
//	idf(t)  = ln((1 + n) / (1 + df(t))) + 1
//	w(d, t) = count(d, t) * idf(t)
//
// and each document row is scaled to unit Euclidean length, so the dot
// product of two rows is their cosine similarity.
package tfidf

import (
	"context"
	"math"
	"sort"

	"github.com/tomtom215/marquee/internal/recommend/text"
)

// Vector is a sparse row. Indices are strictly increasing column numbers.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sparse rows.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Model is a fitted TF-IDF matrix. It is never mutated after Fit returns.
type Model struct {
	// Terms is the vocabulary in column order (lexicographic).
	Terms []string

	// IDF holds one weight per column.
	IDF []float64

	// Rows holds one L2-normalised vector per document, in input order.
	// A document without terms has an empty row.
	Rows []Vector

	vocabulary map[string]int
}

// Column returns the column of term.
func (m *Model) Column(term string) (int, bool) {
	col, ok := m.vocabulary[term]
	return col, ok
}

// NonZero returns the number of stored entries across all rows.
func (m *Model) NonZero() int {
	n := 0
	for i := range m.Rows {
		n += m.Rows[i].Len()
	}
	return n
}

// Fit tokenizes docs and builds the weighted, normalised matrix.
// Only context cancellation makes it fail.
func Fit(ctx context.Context, docs []string, tok *text.Tokenizer) (*Model, error) {
	if tok == nil {
		tok = text.New()
	}

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		counts[i] = tok.TermCounts(doc)
		for term := range counts[i] {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for col, term := range terms {
		vocabulary[term] = col
		idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([]Vector, len(docs))
	for i, tc := range counts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows[i] = weigh(tc, vocabulary, idf)
	}

	return &Model{
		Terms:      terms,
		IDF:        idf,
		Rows:       rows,
		vocabulary: vocabulary,
	}, nil
}

func weigh(tc map[string]int, vocabulary map[string]int, idf []float64) Vector {
	if len(tc) == 0 {
		return Vector{}
	}

	type entry struct {
		col   int
		count int
	}
	entries := make([]entry, 0, len(tc))
	for term, c := range tc {
		entries = append(entries, entry{col: vocabulary[term], count: c})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].col < entries[b].col })

	v := Vector{Indices: make([]int, len(entries)), Values: make([]float64, len(entries))}
	for k, e := range entries {
		v.Indices[k] = e.col
		v.Values[k] = float64(e.count) * idf[e.col]
	}

	if norm := v.Norm(); norm > 0 {
		for k := range v.Values {
			v.Values[k] /= norm
		}
	}
	return v
}
