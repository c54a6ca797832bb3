package moves

import (
	"errors"
	"fmt"
)

var (
	// ErrBadStride indicates a non-positive stride.
	ErrBadStride = errors.New("moves: stride must be positive")
	// ErrInvalidStep indicates two consecutive path cells are not 4-neighbours.
	ErrInvalidStep = errors.New("moves: path step is not a unit move")
	// ErrUnknownDirection indicates ParseDirection received an unknown name.
	ErrUnknownDirection = errors.New("moves: unknown direction")
)

// Direction is one axis-aligned unit move. The values follow the
// North, South, West, East expansion order used by the planner.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

var directionNames = [...]string{"north", "south", "west", "east"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d < North || d > East {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// Command returns the discrete movement command for one block, e.g. "movenorth 1".
func (d Direction) Command() string {
	return "move" + d.String() + " 1"
}

// Offset returns the index delta of d on a lattice with the given stride.
func (d Direction) Offset(stride int) int {
	switch d {
	case North:
		return -stride
	case South:
		return stride
	case West:
		return -1
	case East:
		return 1
	}

	return 0
}

// ParseDirection accepts a direction name ("north") or its command ("movenorth 1").
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		d := Direction(i)
		if s == name || s == d.Command() {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
