package ant

import (
	"maps"

	"mad-ant/internal/parameters"

	"github.com/pkg/errors"
)

// Config controls the ant simulation.
type Config struct {
	// Size is the side of the square grid, it must be positive.
	Size int

	// Rule selects the toggle/turn ordering.
	Rule Rule

	// Scatter is the probability of a cell starting Black on Reset. Zero keeps the
	// classic all-white start.
	Scatter float64

	// Seed is used by Reset(0) when Scatter > 0.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    128,
		Rule:    RuleCanonical,
		Scatter: 0,
		Seed:    1337,
	}
}

// FromMap populates a Config from user parameters, starting from DefaultConfig.
// Unknown keys are reported as errors.
func FromMap(params parameters.Params) (Config, error) {
	c := DefaultConfig()
	if params == nil {
		return c, nil
	}
	// Work on a copy, so keys can be popped to detect leftovers.
	remaining := maps.Clone(params)

	var err error
	if c.Size, err = parameters.PopParamOr(remaining, "size", c.Size); err != nil {
		return c, err
	}
	ruleName, err := parameters.PopParamOr(remaining, "rule", c.Rule.String())
	if err != nil {
		return c, err
	}
	if c.Rule, err = ParseRule(ruleName); err != nil {
		return c, err
	}
	if c.Scatter, err = parameters.PopParamOr(remaining, "scatter", c.Scatter); err != nil {
		return c, err
	}
	if c.Seed, err = parameters.PopParamOr(remaining, "seed", c.Seed); err != nil {
		return c, err
	}
	if len(remaining) > 0 {
		return c, errors.Errorf("unknown ant configuration keys: %v", remaining.Keys())
	}
	return c, c.Validate()
}

// Validate checks the ranges of the configuration values. Size is validated by the grid
// itself, so that the error wraps core.ErrInvalidSize.
func (c Config) Validate() error {
	if c.Scatter < 0 || c.Scatter > 1 {
		return errors.Errorf("scatter must be in [0, 1], got %g", c.Scatter)
	}
	if int(c.Rule) >= len(ruleNames) {
		return errors.Errorf("invalid rule %d", c.Rule)
	}
	return nil
}

// Params renders the configuration back into parameters accepted by FromMap.
func (c Config) Params() parameters.Params {
	return parameters.Params{
		"size":    parameters.Format(c.Size),
		"rule":    c.Rule.String(),
		"scatter": parameters.Format(c.Scatter),
		"seed":    parameters.Format(c.Seed),
	}
}
