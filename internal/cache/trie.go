// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"sort"
	"strings"
)

type trieNode struct {
	children map[rune]*trieNode
	isEnd    bool
	title    string // original spelling of the first title ending here
	index    int    // first row carrying title
	count    int    // rows carrying title
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Suggestion is a title starting with the requested prefix.
type Suggestion struct {
	Title string
	Index int
	// Count is the number of catalog rows with this title.
	Count int
}

// TitleTrie is a prefix tree over catalog titles for autocomplete.
//
// Lookups are O(m) in the prefix length plus the size of the matching
// subtree. The trie is filled once by NewTitleTrie and never modified, so
// it needs no locking.
type TitleTrie struct {
	root           *trieNode
	size           int
	caseSensitive  bool
	maxSuggestions int
}

// NewTitleTrie indexes titles in row order. Empty titles are skipped.
func NewTitleTrie(titles []string, caseSensitive bool, maxSuggestions int) *TitleTrie {
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}
	t := &TitleTrie{
		root:           newTrieNode(),
		caseSensitive:  caseSensitive,
		maxSuggestions: maxSuggestions,
	}
	for i, title := range titles {
		t.insert(title, i)
	}
	return t
}

func (t *TitleTrie) normalizeKey(key string) string {
	if t.caseSensitive {
		return key
	}
	return strings.ToLower(key)
}

func (t *TitleTrie) insert(title string, index int) {
	if title == "" {
		return
	}

	node := t.root
	for _, ch := range t.normalizeKey(title) {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode()
		}
		node = node.children[ch]
	}

	if !node.isEnd {
		node.isEnd = true
		node.title = title
		node.index = index
		t.size++
	}
	node.count++
}

// Size returns the number of distinct keys.
func (t *TitleTrie) Size() int {
	return t.size
}

// Contains reports whether title is indexed.
func (t *TitleTrie) Contains(title string) bool {
	node := t.find(title)
	return node != nil && node.isEnd
}

// Suggest returns titles starting with prefix, most frequent first, then
// alphabetically. A non-positive limit uses the trie default.
func (t *TitleTrie) Suggest(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	node := t.find(prefix)
	if node == nil {
		return nil
	}

	var results []Suggestion
	collect(node, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Title < results[j].Title
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (t *TitleTrie) find(prefix string) *trieNode {
	node := t.root
	for _, ch := range t.normalizeKey(prefix) {
		if node.children[ch] == nil {
			return nil
		}
		node = node.children[ch]
	}
	return node
}

func collect(node *trieNode, results *[]Suggestion) {
	if node.isEnd {
		*results = append(*results, Suggestion{Title: node.title, Index: node.index, Count: node.count})
	}
	for _, child := range node.children {
		collect(child, results)
	}
}
