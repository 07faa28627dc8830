// ant-sweep builds ants over a range of grid sizes and rules and reports, for each, when the
// clamped ant falls into a strict cycle and how long that cycle is.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"mad-ant/internal/analysis"
	"mad-ant/internal/sims/ant"
	"mad-ant/internal/ui/cli"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagSizes    = flag.String("sizes", "1-12", `Grid sizes to sweep, e.g. "3,5,8-16".`)
	flagRules    = flag.String("rules", "canonical,toggle-first", "Comma-separated rules to sweep.")
	flagMaxSteps = flag.Int("max_steps", 2_000_000, "Step budget per ant to close a cycle.")
	flagWorkers  = flag.Int("workers", runtime.NumCPU(), "Number of ants analysed in parallel.")
	flagScatter  = flag.Float64("scatter", 0, "Probability of cells starting black.")
	flagSeed     = flag.Int64("seed", 1337, "Seed used with -scatter.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	jobs, err := buildJobs(*flagSizes, *flagRules)
	if err != nil {
		klog.Exitf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cli.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	fmt.Printf("Sweeping %d ants (%d workers, %d max steps)\n", len(jobs), *flagWorkers, *flagMaxSteps)
	start := time.Now()
	results, err := analysis.Sweep(ctx, jobs, *flagWorkers)
	if err != nil {
		klog.Exit(failureMessage(err))
	}
	elapsed := time.Since(start)

	var longestTransient, longestPeriod *analysis.Result
	fmt.Printf("\n%6s  %-13s  %12s  %10s  %8s\n", "size", "rule", "cycle start", "period", "black")
	for i := range results {
		res := &results[i]
		if !res.Found {
			fmt.Printf("%6d  %-13s  %12s  %10s  %8d\n", res.Job.Config.Size, res.Job.Config.Rule, "-", "-", res.Black)
			continue
		}
		fmt.Printf("%6d  %-13s  %12d  %10d  %8d\n",
			res.Job.Config.Size, res.Job.Config.Rule, res.Cycle.Start, res.Cycle.Period, res.Black)
		if longestTransient == nil || res.Cycle.Start > longestTransient.Cycle.Start {
			longestTransient = res
		}
		if longestPeriod == nil || res.Cycle.Period > longestPeriod.Cycle.Period {
			longestPeriod = res
		}
	}

	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))
	if longestTransient != nil {
		fmt.Printf("Longest transient: %d steps (%s)\n", longestTransient.Cycle.Start, longestTransient.Job)
		fmt.Printf("Longest period: %d steps (%s)\n", longestPeriod.Cycle.Period, longestPeriod.Job)
	}
}

// failureMessage is the one-line report for a sweep that stopped early.
func failureMessage(err error) string {
	if errors.Is(err, context.Canceled) {
		return "Sweep interrupted, no results."
	}
	return fmt.Sprintf("Sweep failed: %v", err)
}

// buildJobs expands the size and rule lists into one job per combination.
func buildJobs(sizesList, rulesList string) ([]analysis.Job, error) {
	sizes, err := parseSizes(sizesList)
	if err != nil {
		return nil, err
	}
	var rules []ant.Rule
	for _, name := range strings.Split(rulesList, ",") {
		rule, err := ant.ParseRule(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	jobs := make([]analysis.Job, 0, len(sizes)*len(rules))
	for _, size := range sizes {
		for _, rule := range rules {
			cfg := ant.DefaultConfig()
			cfg.Size = size
			cfg.Rule = rule
			cfg.Scatter = *flagScatter
			cfg.Seed = *flagSeed
			jobs = append(jobs, analysis.Job{Config: cfg, MaxSteps: *flagMaxSteps})
		}
	}
	return jobs, nil
}

// parseSizes parses a list like "3,5,8-10" into [3 5 8 9 10].
func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid size %q in %q", part, list)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(hi); err != nil {
				return nil, errors.Wrapf(err, "invalid size range %q in %q", part, list)
			}
		}
		if from <= 0 || to < from {
			return nil, errors.Errorf("invalid size range %q in %q", part, list)
		}
		for size := from; size <= to; size++ {
			sizes = append(sizes, size)
		}
	}
	if len(sizes) == 0 {
		return nil, errors.Errorf("no sizes given in %q", list)
	}
	return sizes, nil
}
