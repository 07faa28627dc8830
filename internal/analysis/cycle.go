// Package analysis runs host-level studies of ants, such as finding when a clamped ant
// falls into a strict cycle.
//
// The engines are never shared: every function here works on clones, or on ants created
// and exclusively owned by a single goroutine.
package analysis

import (
	"context"

	"mad-ant/internal/sims/ant"

	"k8s.io/klog/v2"
)

// ctxCheckInterval is how many steps run between checks for context cancelation.
const ctxCheckInterval = 4096

// Cycle describes a strict cycle of the automaton state (position, heading, grid).
type Cycle struct {
	// Start is the step count (as reported by Ant.Steps) at which the state first enters the cycle.
	Start uint64

	// Period is the smallest number of steps after which the state repeats.
	Period int
}

// FindCycle looks for a cycle in the trajectory of a, starting from its current state,
// using Brent's algorithm. a itself is not advanced.
//
// It explores at most maxSteps steps and returns found=false if no cycle was closed within
// that budget. The only error returned is the context's.
func FindCycle(ctx context.Context, a *ant.Ant, maxSteps int) (cycle Cycle, found bool, err error) {
	power, period := 1, 1
	tortoise := a.Clone()
	hare := a.Clone()
	hare.Advance(1)
	for explored := 1; !tortoise.Equal(hare); explored++ {
		if explored >= maxSteps {
			return Cycle{}, false, nil
		}
		if explored%ctxCheckInterval == 0 && ctx.Err() != nil {
			return Cycle{}, false, ctx.Err()
		}
		if power == period {
			tortoise = hare.Clone()
			power *= 2
			period = 0
		}
		hare.Advance(1)
		period++
	}

	// Find the first state of the cycle: walk two ants period steps apart until they meet.
	tortoise = a.Clone()
	hare = a.Clone()
	hare.Advance(period)
	for mu := 1; !tortoise.Equal(hare); mu++ {
		if mu%ctxCheckInterval == 0 && ctx.Err() != nil {
			return Cycle{}, false, ctx.Err()
		}
		tortoise.Advance(1)
		hare.Advance(1)
	}
	cycle = Cycle{Start: tortoise.Steps(), Period: period}
	klog.V(2).Infof("size=%d rule=%s: cycle of period %d starting at step %d",
		a.Size().W, a.Rule(), cycle.Period, cycle.Start)
	return cycle, true, nil
}
