package core

import "time"

// maxPending caps how many steps a single Pending call reports after a stall; the
// remaining backlog is dropped.
const maxPending = 64

// FixedStep helps run simulation updates at a steady ticks-per-second rate,
// independently of how often the host polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pending reports how many ticks are due since the last call and consumes them.
func (f *FixedStep) Pending() int {
	f.advance()
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > maxPending {
		n = maxPending
		f.accumulator = 0
	}
	return n
}

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}
