package ant

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is the heading of the ant. The ordinal values are part of the public contract:
// hosts read them through Ant.Direction.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	// NumDirections is the size of the clockwise cycle Up -> Right -> Down -> Left -> Up.
	NumDirections = 4
)

var directionNames = [NumDirections]string{"up", "right", "down", "left"}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if int(d) < NumDirections {
		return directionNames[d]
	}
	return "invalid"
}

// ParseDirection converts a direction name (case-insensitive) into a Direction.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(name, n) {
			return Direction(i), nil
		}
	}
	return Up, errors.Errorf("unknown direction %q, valid values are %v", name, directionNames)
}

// Clockwise returns the direction a quarter-turn to the right.
func (d Direction) Clockwise() Direction { return (d + 1) % NumDirections }

// CounterClockwise returns the direction a quarter-turn to the left.
func (d Direction) CounterClockwise() Direction { return (d + NumDirections - 1) % NumDirections }

// Delta returns the unit move for the direction in screen coordinates: y grows downwards,
// so Up decrements y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Arrow returns a single glyph pointing in the direction, used by renderers.
func (d Direction) Arrow() string {
	switch d {
	case Up:
		return "▲"
	case Right:
		return "▶"
	case Down:
		return "▼"
	case Left:
		return "◀"
	}
	return "?"
}
