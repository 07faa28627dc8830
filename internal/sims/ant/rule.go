package ant

import (
	"strings"

	"mad-ant/internal/core"

	"github.com/pkg/errors"
)

// Rule selects how the ant's turn is derived from the color of the cell it stands on.
// It is fixed at construction.
type Rule uint8

const (
	// RuleCanonical decides the turn from the color before toggling: white turns
	// clockwise, black turns counter-clockwise. This is Langton's Ant.
	RuleCanonical Rule = iota

	// RuleToggleFirst toggles the cell first and decides the turn from the new color,
	// which mirrors the canonical trajectory.
	RuleToggleFirst
)

var ruleNames = []string{"canonical", "toggle-first"}

// String implements fmt.Stringer.
func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "invalid"
}

// ParseRule converts a rule name into a Rule.
func ParseRule(name string) (Rule, error) {
	for i, n := range ruleNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Rule(i), nil
		}
	}
	return RuleCanonical, errors.Errorf("unknown rule %q, valid values are %v", name, ruleNames)
}

// TurnTable maps (pre-toggle cell color, current direction) to the next direction.
// It is total over colors {White, Black} and the four directions.
type TurnTable [2][NumDirections]Direction

// canonicalTurns encodes Langton's Ant: right on white, left on black.
var canonicalTurns = TurnTable{
	core.White: {Up: Right, Right: Down, Down: Left, Left: Up},
	core.Black: {Up: Left, Right: Up, Down: Right, Left: Down},
}

// Table returns the turn table for the rule, always indexed by the color the cell had
// before it was toggled in the current step.
func (r Rule) Table() TurnTable {
	switch r {
	case RuleToggleFirst:
		// The post-toggle color of a white cell is black and vice versa.
		return TurnTable{
			core.White: canonicalTurns[core.Black],
			core.Black: canonicalTurns[core.White],
		}
	default:
		return canonicalTurns
	}
}

// Turn returns the next direction for a cell of the given pre-toggle color.
func (t *TurnTable) Turn(color uint8, d Direction) Direction {
	return t[color&1][d]
}
