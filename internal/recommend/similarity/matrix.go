// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package similarity holds the dense all-pairs cosine similarity matrix.
package similarity

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/tomtom215/marquee/internal/recommend/tfidf"
)

// ErrDimension is returned when encoded rows do not describe a square matrix.
var ErrDimension = errors.New("similarity matrix dimension mismatch")

// Matrix is a symmetric n×n matrix stored row-major. Entry (i, j) is the
// cosine similarity of documents i and j; the diagonal is exactly 1.
// A Matrix is read-only once built.
type Matrix struct {
	n    int
	data []float32
}

// Size returns n.
func (m *Matrix) Size() int {
	return m.n
}

// At returns entry (i, j).
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.n+j]
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.n : (i+1)*m.n]
}

// Compute builds the matrix from L2-normalised rows using up to workers
// goroutines (0 means GOMAXPROCS). The upper triangle is computed and
// mirrored, so the result is exactly symmetric.
func Compute(ctx context.Context, rows []tfidf.Vector, workers int) (*Matrix, error) {
	n := len(rows)
	m := &Matrix{n: n, data: make([]float32, n*n)}
	if n == 0 {
		return m, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(rStart, rEnd int) {
			defer wg.Done()

			for i := rStart; i < rEnd; i++ {
				if ctx.Err() != nil {
					return
				}
				m.data[i*n+i] = 1
				if rows[i].Len() == 0 {
					continue
				}
				for j := i + 1; j < n; j++ {
					s := float32(tfidf.Dot(rows[i], rows[j]))
					m.data[i*n+j] = s
					m.data[j*n+i] = s
				}
			}
		}(start, end)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeRow returns row i as little-endian float32 values.
func (m *Matrix) EncodeRow(i int) []byte {
	row := m.Row(i)
	buf := make([]byte, 4*len(row))
	for k, v := range row {
		binary.LittleEndian.PutUint32(buf[4*k:], math.Float32bits(v))
	}
	return buf
}

// Decode rebuilds a matrix from n rows produced by EncodeRow.
func Decode(rows [][]byte) (*Matrix, error) {
	n := len(rows)
	m := &Matrix{n: n, data: make([]float32, n*n)}
	for i, raw := range rows {
		if len(raw) != 4*n {
			return nil, fmt.Errorf("%w: row %d has %d bytes, want %d", ErrDimension, i, len(raw), 4*n)
		}
		for k := 0; k < n; k++ {
			m.data[i*n+k] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*k:]))
		}
	}
	return m, nil
}
