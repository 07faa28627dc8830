//go:build ebiten

package app

import (
	"time"

	"mad-ant/internal/core"
	"mad-ant/internal/render"
	"mad-ant/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// positioner is implemented by sims with a single walker to highlight.
type positioner interface {
	X() int
	Y() int
}

// advancer is implemented by sims that can take several steps without snapshots.
type advancer interface {
	Advance(n int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	cells   []uint8

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation, stepping it tps times per second.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUD),
		pacer:   core.NewFixedStep(cfg.TPS),
		cells:   sim.Cells(),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.cells = g.sim.Cells()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	steps := g.pacer.Pending()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = max(steps, 1)
		g.tickOnce = false
	}
	g.advance(steps)

	status := "running"
	if g.paused {
		status = "paused (space: run, n: step)"
	}
	g.hud.Update(status)
	return nil
}

func (g *Game) advance(steps int) {
	if steps <= 0 {
		return
	}
	if a, ok := g.sim.(advancer); ok && steps > 1 {
		a.Advance(steps - 1)
	}
	g.cells = g.sim.Step()
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	antX, antY := -1, -1
	if p, ok := g.sim.(positioner); ok {
		antX, antY = p.X(), p.Y()
	}
	g.painter.Blit(screen, g.cells, antX, antY, render.CellOn, render.CellOff, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
