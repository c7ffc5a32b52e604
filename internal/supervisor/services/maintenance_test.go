// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/metrics"
)

var (
	_ suture.Service = (*SnapshotGCService)(nil)
	_ suture.Service = (*CacheJanitorService)(nil)
)

type fakeGC struct {
	runs atomic.Int32
	err  error
}

func (f *fakeGC) RunGC() error {
	f.runs.Add(1)
	return f.err
}

type fakeCache struct {
	sweeps atomic.Int32
}

func (f *fakeCache) CleanupCache() int {
	f.sweeps.Add(1)
	return 2
}

func serveFor(t *testing.T, svc suture.Service, d time.Duration) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return svc.Serve(ctx)
}

func TestSnapshotGCService(t *testing.T) {
	gc := &fakeGC{}
	ok := metrics.SnapshotGCRuns.WithLabelValues("ok")
	before := testutil.ToFloat64(ok)

	svc := NewSnapshotGCService(gc, 10*time.Millisecond, zerolog.Nop())
	if err := serveFor(t, svc, 55*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve returned %v, want deadline exceeded", err)
	}

	runs := gc.runs.Load()
	if runs < 2 {
		t.Errorf("RunGC calls = %d, want >= 2", runs)
	}
	if got := testutil.ToFloat64(ok) - before; got != float64(runs) {
		t.Errorf("ok runs metric delta = %v, want %d", got, runs)
	}
	if svc.String() != "snapshot-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestSnapshotGCService_ErrorsKeepRunning(t *testing.T) {
	var buf bytes.Buffer
	gc := &fakeGC{err: errors.New("disk full")}

	svc := NewSnapshotGCService(gc, 10*time.Millisecond, zerolog.New(&buf))
	_ = serveFor(t, svc, 55*time.Millisecond)

	if gc.runs.Load() < 2 {
		t.Errorf("RunGC calls = %d, want >= 2 despite errors", gc.runs.Load())
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected error in log, got %s", buf.String())
	}
}

func TestSnapshotGCService_DefaultInterval(t *testing.T) {
	if svc := NewSnapshotGCService(&fakeGC{}, 0, zerolog.Nop()); svc.interval != time.Hour {
		t.Errorf("interval = %v, want 1h", svc.interval)
	}
}

func TestCacheJanitorService(t *testing.T) {
	c := &fakeCache{}
	svc := NewCacheJanitorService(c, 10*time.Millisecond, zerolog.Nop())

	if err := serveFor(t, svc, 55*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve returned %v", err)
	}
	if c.sweeps.Load() < 2 {
		t.Errorf("sweeps = %d, want >= 2", c.sweeps.Load())
	}
	if NewCacheJanitorService(c, 0, zerolog.Nop()).interval != time.Minute {
		t.Error("default interval should be 1m")
	}
}
