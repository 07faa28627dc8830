package ant

import (
	"slices"
	"testing"

	"mad-ant/internal/core"
	"mad-ant/internal/parameters"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracePoint struct {
	cellX, cellY int // Cell that turns black.
	dir          Direction
	x, y         int
}

func TestCanonicalTrace(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)
	require.Equal(t, 1, a.X())
	require.Equal(t, 1, a.Y())
	require.Equal(t, Up, a.Heading())

	want := []tracePoint{
		{1, 1, Right, 2, 1},
		{2, 1, Down, 2, 2},
		{2, 2, Left, 1, 2},
		{1, 2, Up, 1, 1},
	}
	black := map[[2]int]bool{}
	for i, w := range want {
		cells := a.Step()
		black[[2]int{w.cellX, w.cellY}] = true
		assert.Equalf(t, w.dir, a.Heading(), "step %d heading", i+1)
		assert.Equalf(t, int(w.dir), a.Direction(), "step %d direction ordinal", i+1)
		assert.Equalf(t, w.x, a.X(), "step %d x", i+1)
		assert.Equalf(t, w.y, a.Y(), "step %d y", i+1)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				got := cells[y*3+x] == core.Black
				if got != black[[2]int{x, y}] {
					t.Fatalf("after step %d cell (%d,%d) black=%v, expected %v", i+1, x, y, got, !got)
				}
			}
		}
	}
	assert.Equal(t, uint64(4), a.Steps())
}

func TestToggleFirstTraceIsMirrored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 3
	cfg.Rule = RuleToggleFirst
	a, err := NewWithConfig(cfg)
	require.NoError(t, err)

	want := []tracePoint{
		{1, 1, Left, 0, 1},
		{0, 1, Down, 0, 2},
		{0, 2, Right, 1, 2},
		{1, 2, Up, 1, 1},
	}
	for i, w := range want {
		cells := a.Step()
		assert.Equalf(t, core.Black, cells[w.cellY*3+w.cellX], "step %d cell", i+1)
		assert.Equalf(t, w.dir, a.Heading(), "step %d heading", i+1)
		assert.Equalf(t, [2]int{w.x, w.y}, [2]int{a.X(), a.Y()}, "step %d position", i+1)
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		a, err := New(size)
		require.Error(t, err)
		assert.Nil(t, a)
		assert.True(t, errors.Is(err, core.ErrInvalidSize), "got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Scatter = 1.5
	a, err := NewWithConfig(cfg)
	require.Error(t, err)
	assert.Nil(t, a)
}

func TestSizeOne(t *testing.T) {
	a, err := New(1)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		cells := a.Step()
		require.Len(t, cells, 1)
		assert.Equal(t, 0, a.X())
		assert.Equal(t, 0, a.Y())
	}
	// Cell alternates black/white, heading alternates Right/Up.
	assert.Equal(t, core.White, a.Cells()[0])
	assert.Equal(t, Up, a.Heading())
}

// clamp is an independent rendition of the boundary policy used to cross-check Step.
func clamp(v, size int) int {
	return max(0, min(size-1, v))
}

func TestStepInvariants(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 7, 16} {
		for _, rule := range []Rule{RuleCanonical, RuleToggleFirst} {
			cfg := DefaultConfig()
			cfg.Size = size
			cfg.Rule = rule
			a, err := NewWithConfig(cfg)
			require.NoError(t, err)

			prev := a.Cells()
			for step := 0; step < 2000; step++ {
				x, y := a.X(), a.Y()
				cells := a.Step()

				// Buffer length.
				if len(cells) != size*size {
					t.Fatalf("size=%d rule=%s step=%d: snapshot length %d", size, rule, step, len(cells))
				}
				// Exactly one toggle, at the pre-step position.
				changed := 0
				for i := range cells {
					if cells[i] > 1 {
						t.Fatalf("size=%d rule=%s: cell %d has color %d", size, rule, i, cells[i])
					}
					if cells[i] != prev[i] {
						changed++
						if i != y*size+x {
							t.Fatalf("size=%d rule=%s step=%d: cell %d changed, ant was at (%d,%d)", size, rule, step, i, x, y)
						}
					}
				}
				if changed != 1 {
					t.Fatalf("size=%d rule=%s step=%d: %d cells changed", size, rule, step, changed)
				}
				// Position bounds and clamped move.
				dx, dy := a.Heading().Delta()
				if a.X() != clamp(x+dx, size) || a.Y() != clamp(y+dy, size) {
					t.Fatalf("size=%d rule=%s step=%d: moved (%d,%d)->(%d,%d) heading %s",
						size, rule, step, x, y, a.X(), a.Y(), a.Heading())
				}
				if d := a.Direction(); d < 0 || d > 3 {
					t.Fatalf("direction %d out of domain", d)
				}
				prev = cells
			}
		}
	}
}

func TestBoundaryClamp(t *testing.T) {
	// On a 2x2 grid the ant starts at (1,1) and its first move (Right) points outward.
	a, err := New(2)
	require.NoError(t, err)
	a.Step()
	assert.Equal(t, Right, a.Heading())
	assert.Equal(t, 1, a.X(), "x must be held at the right wall")
	assert.Equal(t, 1, a.Y())

	// Black cell: turn left to Up, which is inward.
	a.Step()
	assert.Equal(t, Up, a.Heading())
	assert.Equal(t, [2]int{1, 0}, [2]int{a.X(), a.Y()})

	// White cell on the top-right corner: Right is outward again.
	a.Step()
	assert.Equal(t, Right, a.Heading())
	assert.Equal(t, [2]int{1, 0}, [2]int{a.X(), a.Y()})
}

func TestDeterminism(t *testing.T) {
	a, err := New(32)
	require.NoError(t, err)
	b, err := New(32)
	require.NoError(t, err)

	a.Advance(5000)
	for range 5000 {
		b.Step()
	}
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Steps(), b.Steps())
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same size and step count must reach the same grid")
	}
}

func TestSnapshotAliasing(t *testing.T) {
	a, err := New(5)
	require.NoError(t, err)
	cells := a.Step()
	for i := range cells {
		cells[i] = 7
	}
	for _, c := range a.Cells() {
		if c > 1 {
			t.Fatal("mutating the returned snapshot reached the engine grid")
		}
	}
	other := a.Step()
	assert.NotSame(t, &cells[0], &other[0])
}

func TestCloneAndEqual(t *testing.T) {
	a, err := New(9)
	require.NoError(t, err)
	a.Advance(40)

	c := a.Clone()
	assert.True(t, a.Equal(c))
	c.Step()
	assert.False(t, a.Equal(c), "clone must advance independently")
	assert.Equal(t, uint64(40), a.Steps())
	assert.Equal(t, uint64(41), c.Steps())
}

func TestResetScatterDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 32
	cfg.Scatter = 0.5
	cfg.Seed = 99
	a, err := NewWithConfig(cfg)
	require.NoError(t, err)

	initial := a.Cells()
	assert.Greater(t, a.Black(), 0)

	a.Advance(300)
	a.Reset(0)
	assert.Equal(t, initial, a.Cells(), "Reset(0) must reuse the config seed")
	assert.Equal(t, uint64(0), a.Steps())
	assert.Equal(t, [2]int{16, 16}, [2]int{a.X(), a.Y()})
	assert.Equal(t, Up, a.Heading())

	a.Reset(777)
	seeded := a.Cells()
	a.Reset(777)
	assert.Equal(t, seeded, a.Cells())
	assert.NotEqual(t, initial, seeded, "different seeds should scatter differently")
}

func TestResetClearsWithoutScatter(t *testing.T) {
	a, err := New(16)
	require.NoError(t, err)
	a.Advance(100)
	require.Greater(t, a.Black(), 0)
	a.Reset(12345)
	assert.Equal(t, 0, a.Black())
	assert.Equal(t, [2]int{8, 8}, [2]int{a.X(), a.Y()})
}

func TestTurnTables(t *testing.T) {
	canonical := RuleCanonical.Table()
	mirrored := RuleToggleFirst.Table()
	for d := Direction(0); d < NumDirections; d++ {
		assert.Equal(t, d.Clockwise(), canonical.Turn(core.White, d))
		assert.Equal(t, d.CounterClockwise(), canonical.Turn(core.Black, d))
		assert.Equal(t, d.CounterClockwise(), mirrored.Turn(core.White, d))
		assert.Equal(t, d.Clockwise(), mirrored.Turn(core.Black, d))
	}
}

func TestDirectionOrdinals(t *testing.T) {
	assert.Equal(t, 0, int(Up))
	assert.Equal(t, 1, int(Right))
	assert.Equal(t, 2, int(Down))
	assert.Equal(t, 3, int(Left))
	assert.Equal(t, Up, Left.Clockwise())
	assert.Equal(t, Left, Up.CounterClockwise())

	d, err := ParseDirection("DOWN")
	require.NoError(t, err)
	assert.Equal(t, Down, d)
	_, err = ParseDirection("north")
	require.Error(t, err)
}

func TestRegistered(t *testing.T) {
	factory, err := core.Lookup("ant")
	require.NoError(t, err)

	sim, err := factory(parameters.Parse("size=5"))
	require.NoError(t, err)
	assert.Equal(t, "ant", sim.Name())
	assert.Equal(t, core.Size{W: 5, H: 5}, sim.Size())
	assert.Len(t, sim.Step(), 25)

	sim, err = factory(parameters.Parse("size=0"))
	require.Error(t, err)
	assert.Nil(t, sim)
	assert.True(t, errors.Is(err, core.ErrInvalidSize))
}

func TestParameters(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)
	a.Advance(2)
	snapshot := a.Parameters()
	values := map[string]string{}
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "3", values["size"])
	assert.Equal(t, "canonical", values["rule"])
	assert.Equal(t, "2", values["x"])
	assert.Equal(t, "2", values["y"])
	assert.Equal(t, "down", values["direction"])
	assert.Equal(t, "2", values["steps"])
	assert.Equal(t, "2", values["black"])
}

func TestAccessorsDoNotExposeState(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)
	twin, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Black())
	cells := a.Cells()
	cells[2*3+2] = core.Black
	assert.Equal(t, 0, a.Black(), "mutating Cells() must not reach the engine")

	for range 50 {
		a.Step()
		twin.Step()
	}
	assert.True(t, a.Equal(twin), "only Step may change the engine state")

	black := 0
	for _, c := range a.Cells() {
		black += int(c)
	}
	assert.Equal(t, black, a.Black())
}
