package main

import (
	"math"

	"mad-ant/internal/core"

	"github.com/pkg/errors"
)

// sizeFromNumber converts a JavaScript number into a grid size. Fractional, infinite or NaN
// sizes are rejected with core.ErrInvalidSize instead of being truncated.
func sizeFromNumber(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, errors.Wrapf(core.ErrInvalidSize, "grid size must be a positive integer, got %v", v)
	}
	return int(v), nil
}
