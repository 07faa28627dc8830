package core

import (
	"slices"

	"mad-ant/internal/parameters"

	"github.com/pkg/errors"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement so hosts can drive it.
//
// Step advances the automaton by one tick and returns an independent snapshot of the cells.
// Cells returns the same kind of snapshot without advancing.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() []uint8
	Cells() []uint8
}

// Factory constructs a Sim from user configuration.
type Factory func(params parameters.Params) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, errors.Errorf("unknown sim %q, registered sims: %v", name, Names())
	}
	return f, nil
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
