// Package game contains the snake simulation: pure state and the step
// algorithm, with no terminal or scripting dependencies so the logic stays
// testable on its own.
package game

// Direction is a compass direction for snake movement.
// Grid coordinates grow east (+x) and north (+y).
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the reverse direction. Applying it twice is a no-op.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit grid step for this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// String returns the lowercase wire name used by the script contract.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "west"
	}
}

// ParseDirection decodes a wire name. Anything other than the four exact
// lowercase names (including case variants) yields ok=false, never an error.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north":
		return North, true
	case "south":
		return South, true
	case "east":
		return East, true
	case "west":
		return West, true
	default:
		return 0, false
	}
}

// Point is a grid cell.
type Point struct {
	X, Y int
}

// DirectionBetween computes the direction from a to b for adjacent cells.
// If both axes differ (misuse on a diagonal), the horizontal axis wins.
func DirectionBetween(a, b Point) Direction {
	dx := b.X - a.X
	dy := b.Y - a.Y
	switch {
	case dx > 0:
		return East
	case dx < 0:
		return West
	case dy > 0:
		return North
	default:
		return South
	}
}
