// Package ant implements Langton's Ant on a bounded square grid.
//
// The ant is stepped one tick at a time by a host, which renders the snapshot returned by
// Step. Moves that would leave the grid are clamped: the ant still turns and toggles its
// cell, but stays against the wall.
//
// An Ant is not safe for concurrent use; hosts sharing one must serialize calls.
package ant

import (
	"mad-ant/internal/core"
	"mad-ant/internal/parameters"

	"k8s.io/klog/v2"
)

// Ant is the engine state: position, heading and the grid it walks on.
type Ant struct {
	cfg   Config
	grid  *core.Grid
	turns TurnTable

	x, y  int
	dir   Direction
	steps uint64
}

// New returns an ant on an all-white size*size grid, using the canonical rule.
// It fails with an error wrapping core.ErrInvalidSize if size is not positive.
func New(size int) (*Ant, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns an ant configured from the provided options.
// No partially built Ant is ever returned on error.
func NewWithConfig(cfg Config) (*Ant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	a := &Ant{
		cfg:   cfg,
		grid:  grid,
		turns: cfg.Rule.Table(),
	}
	a.Reset(0)
	klog.V(1).Infof("Created ant: size=%d, rule=%s, scatter=%g", cfg.Size, cfg.Rule, cfg.Scatter)
	return a, nil
}

// Name returns the simulation identifier.
func (a *Ant) Name() string { return "ant" }

// Size returns the grid dimensions.
func (a *Ant) Size() core.Size { return core.Size{W: a.cfg.Size, H: a.cfg.Size} }

// Config returns the configuration the ant was built with.
func (a *Ant) Config() Config { return a.cfg }

// Rule returns the toggle/turn ordering in use.
func (a *Ant) Rule() Rule { return a.cfg.Rule }

// X returns the current column, in [0, size).
func (a *Ant) X() int { return a.x }

// Y returns the current row, in [0, size).
func (a *Ant) Y() int { return a.y }

// Direction returns the ordinal of the current heading: Up=0, Right=1, Down=2, Left=3.
func (a *Ant) Direction() int { return int(a.dir) }

// Heading returns the current heading.
func (a *Ant) Heading() Direction { return a.dir }

// Steps returns the number of ticks taken since construction or the last Reset.
func (a *Ant) Steps() uint64 { return a.steps }

// Cells returns a snapshot of the grid, in row-major order.
func (a *Ant) Cells() []uint8 { return a.grid.Snapshot() }

// Black returns the number of black cells.
func (a *Ant) Black() int { return a.grid.Count() }

// Reset restores the initial state: centered, facing Up, all cells white. If the
// configuration has a Scatter probability, cells are seeded Black deterministically
// from seed (or from Config.Seed if seed is 0).
func (a *Ant) Reset(seed int64) {
	a.x, a.y = a.cfg.Size/2, a.cfg.Size/2
	a.dir = Up
	a.steps = 0
	if a.cfg.Scatter <= 0 {
		a.grid.Clear()
		return
	}
	if seed == 0 {
		seed = a.cfg.Seed
	}
	a.grid.Fill(core.NewRNG(seed), a.cfg.Scatter)
}

// Step advances the ant by one tick and returns a snapshot of the grid.
//
// The turn is decided from the color of the current cell before it is toggled, then the
// cell is toggled and the ant moves one cell forward unless that would leave the grid.
func (a *Ant) Step() []uint8 {
	a.advance()
	return a.grid.Snapshot()
}

// Advance runs n steps without producing intermediate snapshots.
func (a *Ant) Advance(n int) {
	for range n {
		a.advance()
	}
}

// advance is Step without the snapshot.
func (a *Ant) advance() {
	color := a.grid.At(a.x, a.y)
	next := a.turns.Turn(color, a.dir)
	a.grid.Toggle(a.x, a.y)
	a.dir = next

	// Clamp: an outward move leaves the coordinate unchanged.
	dx, dy := next.Delta()
	if nx := a.x + dx; nx >= 0 && nx < a.cfg.Size {
		a.x = nx
	}
	if ny := a.y + dy; ny >= 0 && ny < a.cfg.Size {
		a.y = ny
	}
	a.steps++
}

// Clone returns an independent copy of the ant, including its step counter.
func (a *Ant) Clone() *Ant {
	c := *a
	c.grid = a.grid.Clone()
	return &c
}

// Equal reports whether both ants are in the same automaton state: position, heading,
// grid and rule. The step counter is not part of the state.
func (a *Ant) Equal(other *Ant) bool {
	return a.x == other.x && a.y == other.y && a.dir == other.dir &&
		a.cfg.Rule == other.cfg.Rule && a.grid.Equal(other.grid)
}

func init() {
	core.Register("ant", func(params parameters.Params) (core.Sim, error) {
		cfg, err := FromMap(params)
		if err != nil {
			return nil, err
		}
		a, err := NewWithConfig(cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
