package core

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Cell colors stored in a Grid.
const (
	White uint8 = 0
	Black uint8 = 1
)

// ErrInvalidSize is returned when a grid is requested with a non-positive size.
var ErrInvalidSize = errors.New("invalid size")

// Grid stores a square grid of two-valued cell colors in row-major order.
//
// It is not safe for concurrent use.
type Grid struct {
	size int
	data []uint8
}

// NewGrid allocates a size*size grid with every cell White.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "grid size must be positive, got %d", size)
	}
	return &Grid{size: size, data: make([]uint8, size*size)}, nil
}

// Size returns the length of the grid side.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, always Size()*Size().
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// At returns the color at (x, y). It panics if the coordinates are out of range.
func (g *Grid) At(x, y int) uint8 {
	g.mustBeInBounds(x, y)
	return g.data[g.Index(x, y)]
}

// Toggle flips the color at (x, y) and returns the new color.
// It panics if the coordinates are out of range.
func (g *Grid) Toggle(x, y int) uint8 {
	g.mustBeInBounds(x, y)
	idx := g.Index(x, y)
	g.data[idx] ^= 1
	return g.data[idx]
}

// Snapshot returns an independent copy of the cells.
func (g *Grid) Snapshot() []uint8 { return slices.Clone(g.data) }

// Count returns the number of Black cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.size == other.size && slices.Equal(g.data, other.data)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, data: g.Snapshot()}
}

// Clear fills the grid with White.
func (g *Grid) Clear() {
	clear(g.data)
}

// Fill sets every cell to Black with probability p, drawing from rng.
func (g *Grid) Fill(rng *RNG, p float64) {
	for i := range g.data {
		g.data[i] = White
		if rng.Chance(p) {
			g.data[i] = Black
		}
	}
}

func (g *Grid) mustBeInBounds(x, y int) {
	if !g.InBounds(x, y) {
		exceptions.Panicf("grid: cell (%d, %d) out of range for size %d", x, y, g.size)
	}
}
