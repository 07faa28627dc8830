//go:build ebiten

// ant opens a window running a registered simulation (Langton's Ant by default).
//
// Keys: space pauses, n steps once, r resets, s reseeds, q quits.
package main

import (
	"flag"
	"fmt"

	"mad-ant/internal/app"
	"mad-ant/internal/core"
	_ "mad-ant/internal/sims/ant"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		klog.Exitf("%v", err)
	}
	sim, err := factory(cfg.SimParams())
	if err != nil {
		klog.Exitf("Invalid -config=%q: %+v", cfg.Params, err)
	}
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("mad-ant: %s %dx%d", sim.Name(), size.W, size.H))
	ebiten.SetWindowSize(w, h)
	klog.V(1).Infof("Running %s at %d steps/s, window %dx%d", sim.Name(), cfg.TPS, w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		must.M(err)
	}
}
