// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/marquee/internal/logging"
)

// naValues are the cell values pandas reads as missing by default.
var naValues = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// ctxCheckInterval is how many rows are parsed between context checks.
const ctxCheckInterval = 512

// Options tune how raw cells are interpreted.
type Options struct {
	// NAAsEmpty treats pandas NA markers such as "NaN" or "null" as missing.
	NAAsEmpty bool
}

// CSVSource loads the catalog from a comma-separated file.
type CSVSource struct {
	Path    string
	Options Options
}

// Load implements Source.
func (s CSVSource) Load(ctx context.Context) (*Catalog, error) {
	return LoadCSV(ctx, s.Path, s.Options)
}

// LoadCSV reads a CSV dataset with a header row containing at least
// RequiredColumns. An unreadable file or a missing column is an error; a
// header-only file yields an empty catalog.
func LoadCSV(ctx context.Context, path string, opts Options) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	decoded, encodingName, err := decodeInput(data)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	cat, err := ParseCSV(ctx, bytes.NewReader(decoded), path, opts)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	logging.Debug().
		Str("path", path).
		Str("encoding", encodingName).
		Int("items", cat.Len()).
		Int("warnings", len(cat.Warnings)).
		Msg("dataset parsed")

	return cat, nil
}

// ParseCSV parses UTF-8 CSV from r. source names the input in the catalog.
func ParseCSV(ctx context.Context, r io.Reader, source string, opts Options) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		items    []Item
		warnings []Warning
		row      = 1 // header is row 1
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++

		if row%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if err != nil {
			warnings = append(warnings, Warning{Row: row, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}

		if len(record) < len(header) {
			warnings = append(warnings, Warning{
				Row:     row,
				Message: fmt.Sprintf("row has %d columns, expected %d; missing cells treated as empty", len(record), len(header)),
			})
		}

		cell := func(column string) string {
			idx := columns[column]
			if idx >= len(record) {
				return ""
			}
			return normalizeCell(record[idx], opts)
		}

		items = append(items, Item{
			Title:    norm.NFC.String(strings.TrimSpace(cell("title"))),
			Genres:   cell("genres"),
			Keywords: cell("keywords"),
			Tagline:  cell("tagline"),
			Cast:     cell("cast"),
			Director: cell("director"),
		})
	}

	cat := New(items, source)
	cat.Warnings = warnings
	return cat, nil
}

// mapColumns locates every required column in header. Names are matched
// case-insensitively after trimming; the first occurrence wins.
func mapColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	columns := make(map[string]int, len(RequiredColumns))
	var missing []string
	for _, name := range RequiredColumns {
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[name] = idx
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return columns, nil
}

func normalizeCell(value string, opts Options) string {
	if opts.NAAsEmpty {
		if _, isNA := naValues[strings.TrimSpace(value)]; isNA {
			return ""
		}
	}
	return value
}
