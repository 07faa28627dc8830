// ant-term runs Langton's Ant in the terminal.
//
// By default it runs -steps steps and prints the final grid. With -watch it animates the
// ant at -tps steps per second until -steps is reached (or forever if -steps=0) or Ctrl+C.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"mad-ant/internal/core"
	"mad-ant/internal/parameters"
	"mad-ant/internal/sims/ant"
	"mad-ant/internal/ui/cli"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// frameInterval is how often the watch mode redraws.
const frameInterval = time.Second / 30

var (
	flagConfig = flag.String("config", "size=21",
		`ant configuration as "key=value" pairs separated by commas: size, rule (canonical or toggle-first), scatter, seed`)
	flagSteps = flag.Int("steps", 200, "Number of steps to run. With -watch, 0 runs until interrupted.")
	flagWatch = flag.Bool("watch", false, "Animate the ant instead of printing only the final grid.")
	flagTPS   = flag.Int("tps", 30, "Steps per second in -watch mode.")
	flagColor = flag.String("color", "auto", "Color output: auto, always or never.")
	flagSeed  = flag.Int64("seed", 0, "Reset seed used when the configuration sets scatter; 0 uses the configured seed.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagSteps < 0 {
		klog.Exitf("Invalid -steps=%d", *flagSteps)
	}
	if !*flagWatch && *flagSteps == 0 {
		klog.Exitf("-steps=0 only makes sense with -watch")
	}

	cfg, err := ant.FromMap(parameters.Parse(*flagConfig))
	if err != nil {
		klog.Exitf("Invalid -config=%q: %v", *flagConfig, err)
	}
	a, err := ant.NewWithConfig(cfg)
	if err != nil {
		klog.Exitf("Failed to create ant: %v", err)
	}
	if *flagSeed != 0 {
		a.Reset(*flagSeed)
	}
	klog.V(1).Infof("Ant configuration: %s", cfg.Params())

	printer := cli.New(os.Stdout, useColor(*flagColor), *flagWatch)
	if !*flagWatch {
		a.Advance(*flagSteps)
		must.M(printer.Print(a))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	cli.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()
	must.M(watch(ctx, a, printer))
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	case "auto":
		return cli.IsTerminal(os.Stdout)
	}
	klog.Exitf("Invalid -color=%q, valid values are auto, always or never", mode)
	return false
}

// watch animates a until the step budget is used or ctx is canceled.
func watch(ctx context.Context, a *ant.Ant, printer *cli.Printer) error {
	pacer := core.NewFixedStep(*flagTPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	cli.HideCursor()
	defer cli.ResetTerminal()

	limit := uint64(*flagSteps)
	for {
		n := pacer.Pending()
		if limit > 0 {
			n = int(min(uint64(n), limit-a.Steps()))
		}
		if n > 0 {
			a.Advance(n)
			if err := printer.Print(a); err != nil {
				return err
			}
		}
		if limit > 0 && a.Steps() >= limit {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
