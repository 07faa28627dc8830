package analysis

import (
	"context"
	"fmt"
	"runtime"

	"mad-ant/internal/sims/ant"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Job describes one ant to build and analyse.
type Job struct {
	Config   ant.Config
	MaxSteps int
}

// String implements fmt.Stringer.
func (j Job) String() string {
	return fmt.Sprintf("size=%d rule=%s scatter=%g", j.Config.Size, j.Config.Rule, j.Config.Scatter)
}

// Result of a Job.
type Result struct {
	Job   Job
	Cycle Cycle
	Found bool

	// Black is the number of black cells when the cycle starts, or after MaxSteps if no
	// cycle was found.
	Black int
}

// Sweep runs FindCycle for every job, with at most workers jobs in parallel (workers <= 0
// uses runtime.NumCPU). Each ant is owned by the goroutine running its job.
//
// Results are returned in the same order as jobs. The first error (an invalid
// configuration or the context being canceled) stops the sweep.
func Sweep(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for idx, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := runJob(ctx, job)
			if err != nil {
				return errors.WithMessagef(err, "job #%d (%s)", idx, job)
			}
			results[idx] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(ctx context.Context, job Job) (Result, error) {
	a, err := ant.NewWithConfig(job.Config)
	if err != nil {
		return Result{}, err
	}
	result := Result{Job: job}
	result.Cycle, result.Found, err = FindCycle(ctx, a, job.MaxSteps)
	if err != nil {
		return Result{}, err
	}
	if result.Found {
		a.Advance(int(result.Cycle.Start))
	} else {
		a.Advance(job.MaxSteps)
	}
	result.Black = a.Black()
	return result, nil
}
