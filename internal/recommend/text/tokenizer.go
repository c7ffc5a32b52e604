// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package text turns feature strings into the terms the TF-IDF model counts.
//
// Tokens are maximal runs of word characters (letters, digits, underscore)
// at least two characters long, lowercased, with English stop words removed.
// Stemming is optional and runs after stop word removal.
package text

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// MinTokenLength is the shortest token kept. Single characters are dropped.
const MinTokenLength = 2

// Tokenizer splits text into terms. The zero value is not usable; call New.
// A Tokenizer holds no mutable state and is safe for concurrent use.
type Tokenizer struct {
	stopWords map[string]struct{}
	stem      bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithStemming enables Snowball English stemming.
func WithStemming(enabled bool) Option {
	return func(t *Tokenizer) {
		t.stem = enabled
	}
}

// WithStopWords replaces the built-in English list. A nil or empty slice
// disables stop word removal.
func WithStopWords(words []string) Option {
	return func(t *Tokenizer) {
		t.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			t.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// New creates a tokenizer using the English stop word list.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{stopWords: englishStopWords}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Stemming reports whether stemming is enabled.
func (t *Tokenizer) Stemming() bool {
	return t.stem
}

// Tokenize returns the terms of s in order of appearance, duplicates kept.
func (t *Tokenizer) Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	tokens := make([]string, 0, len(lower)/6)

	start := -1
	runes := 0
	flush := func(end int) {
		if start >= 0 && runes >= MinTokenLength {
			if tok, ok := t.accept(lower[start:end]); ok {
				tokens = append(tokens, tok)
			}
		}
		start = -1
		runes = 0
	}

	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(lower))

	return tokens
}

// TermCounts returns how often each term occurs in s.
func (t *Tokenizer) TermCounts(s string) map[string]int {
	tokens := t.Tokenize(s)
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func (t *Tokenizer) accept(tok string) (string, bool) {
	if _, stop := t.stopWords[tok]; stop {
		return "", false
	}
	if !t.stem {
		return tok, true
	}
	stemmed, err := snowball.Stem(tok, "english", true)
	if err != nil || stemmed == "" {
		// The stemmer only fails for unsupported languages; keep the raw term.
		return tok, true
	}
	return stemmed, true
}

// isWordRune mirrors the \w class of Unicode-aware regular expressions.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
