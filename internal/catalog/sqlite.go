// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS movies (
    idx      INTEGER PRIMARY KEY,
    title    TEXT NOT NULL DEFAULT '',
    genres   TEXT NOT NULL DEFAULT '',
    keywords TEXT NOT NULL DEFAULT '',
    tagline  TEXT NOT NULL DEFAULT '',
    cast_members TEXT NOT NULL DEFAULT '',
    director TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title);

CREATE TABLE IF NOT EXISTS catalog_meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore keeps a catalog in a SQLite database. Row order is preserved
// through the idx column.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the catalog database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import replaces the stored catalog with cat in a single transaction.
func (s *SQLiteStore) Import(ctx context.Context, cat *Catalog) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return fmt.Errorf("clear movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (idx, title, genres, keywords, tagline, cast_members, director)
         VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range cat.Items {
		it := &cat.Items[i]
		if _, err = stmt.ExecContext(ctx, i, it.Title, it.Genres, it.Keywords, it.Tagline, it.Cast, it.Director); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	meta := map[string]string{
		"source":      cat.Source,
		"fingerprint": cat.Fingerprint,
	}
	for key, value := range meta {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO catalog_meta (key, value) VALUES (?, ?)
             ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Load implements Source.
func (s *SQLiteStore) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, genres, keywords, tagline, cast_members, director FROM movies ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Title, &it.Genres, &it.Keywords, &it.Tagline, &it.Cast, &it.Director); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return New(items, "sqlite:"+s.path), nil
}

// Count returns the number of stored movies.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// ImportedFrom returns the source recorded by the last Import, or "".
func (s *SQLiteStore) ImportedFrom(ctx context.Context) (string, error) {
	var source string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM catalog_meta WHERE key = 'source'").Scan(&source)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read catalog source: %w", err)
	}
	return source, nil
}
