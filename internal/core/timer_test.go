package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newTestFixedStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs, _ := newTestFixedStep(10)
	if got := fs.Pending(); got != 1 {
		t.Fatalf("first call should report one tick right away, got %d", got)
	}
	if got := fs.Pending(); got != 0 {
		t.Fatalf("no time elapsed, second call must report no ticks, got %d", got)
	}
}

func TestFixedStepPending(t *testing.T) {
	fs, clock := newTestFixedStep(10)
	if got := fs.Pending(); got != 1 {
		t.Fatalf("expected the initial tick to be pending, got %d", got)
	}
	clock.add(350 * time.Millisecond)
	if got := fs.Pending(); got != 3 {
		t.Fatalf("expected 3 pending ticks after 350ms at 10 TPS, got %d", got)
	}
	clock.add(50 * time.Millisecond)
	if got := fs.Pending(); got != 1 {
		t.Fatalf("expected leftover 50ms plus 50ms to make one tick, got %d", got)
	}
}

func TestFixedStepPendingCapsBacklog(t *testing.T) {
	fs, clock := newTestFixedStep(100)
	fs.Pending()
	clock.add(time.Hour)
	if got := fs.Pending(); got != maxPending {
		t.Fatalf("expected backlog capped at %d, got %d", maxPending, got)
	}
	if got := fs.Pending(); got != 0 {
		t.Fatalf("backlog should be dropped after capping, got %d", got)
	}
}

func TestFixedStepDefaultTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got interval %s", fs.Interval())
	}
}
