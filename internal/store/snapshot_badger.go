// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package store persists derived artifacts between process restarts.
//
// BadgerSnapshotStore keeps similarity matrices so a restart against an
// unchanged catalog skips the quadratic similarity computation. Each matrix
// is stored one row per key, with a JSON header written last: a snapshot
// without its header is treated as absent.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/recommend/similarity"
)

const snapshotKeyPrefix = "matrix:"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("snapshot store is closed")

// Options configures a BadgerSnapshotStore.
type Options struct {
	// Path is the badger directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in memory (tests).
	InMemory bool

	// GCDiscardRatio is passed to RunValueLogGC. Defaults to 0.5.
	GCDiscardRatio float64
}

type snapshotMeta struct {
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// BadgerSnapshotStore implements recommend.SnapshotStore on BadgerDB.
type BadgerSnapshotStore struct {
	db           *badger.DB
	discardRatio float64

	mu     sync.RWMutex
	closed bool
}

// OpenBadger opens or creates a snapshot store.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func OpenBadger(opts Options) (*BadgerSnapshotStore, error) {
	bopts := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = nil // Suppress BadgerDB internal logs
	bopts.ValueLogFileSize = 64 << 20

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for snapshots: %w", err)
	}

	ratio := opts.GCDiscardRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	return &BadgerSnapshotStore{db: db, discardRatio: ratio}, nil
}

func metaKey(key string) []byte {
	return []byte(snapshotKeyPrefix + key + ":meta")
}

func rowKey(key string, row int) []byte {
	return []byte(fmt.Sprintf("%s%s:row:%08d", snapshotKeyPrefix, key, row))
}

// Load returns the matrix stored under key. ok is false when none exists.
func (s *BadgerSnapshotStore) Load(ctx context.Context, key string) (*similarity.Matrix, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrClosed
	}

	var rows [][]byte
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get snapshot header: %w", err)
		}

		var meta snapshotMeta
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		}); err != nil {
			return fmt.Errorf("decode snapshot header: %w", err)
		}

		rows = make([][]byte, meta.Size)
		for i := 0; i < meta.Size; i++ {
			if i%256 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			item, err := txn.Get(rowKey(key, i))
			if errors.Is(err, badger.ErrKeyNotFound) {
				// Incomplete snapshot; treat as missing.
				rows = nil
				return nil
			}
			if err != nil {
				return fmt.Errorf("get snapshot row %d: %w", i, err)
			}
			if rows[i], err = item.ValueCopy(nil); err != nil {
				return fmt.Errorf("read snapshot row %d: %w", i, err)
			}
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	m, err := similarity.Decode(rows)
	if err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return m, true, nil
}

// Save replaces every stored snapshot with m under key.
func (s *BadgerSnapshotStore) Save(ctx context.Context, key string, m *similarity.Matrix) error {
	if key == "" {
		return errors.New("snapshot key cannot be empty")
	}
	if m == nil {
		return errors.New("snapshot matrix cannot be nil")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	// Only the current catalog's matrix is worth keeping.
	if err := s.db.DropPrefix([]byte(snapshotKeyPrefix)); err != nil {
		return fmt.Errorf("drop old snapshots: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i := 0; i < m.Size(); i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := wb.Set(rowKey(key, i), m.EncodeRow(i)); err != nil {
			return fmt.Errorf("write snapshot row %d: %w", i, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush snapshot rows: %w", err)
	}

	data, err := json.Marshal(snapshotMeta{Size: m.Size(), CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal snapshot header: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey(key), data)
	})
}

// RunGC runs value log garbage collection until nothing more is reclaimed.
func (s *BadgerSnapshotStore) RunGC() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	for {
		err := s.db.RunValueLogGC(s.discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close closes the database. It is safe to call more than once.
func (s *BadgerSnapshotStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
