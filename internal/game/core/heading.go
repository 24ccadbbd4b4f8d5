package core

import "fmt"

// Heading is the ant's direction of travel. The numeric order matters:
// turning counter-clockwise decrements it and turning clockwise increments it,
// both modulo 4.
type Heading int

const (
	Up Heading = iota
	Left
	Down
	Right
)

const headingCount = 4

// TurnLeft rotates a quarter-turn counter-clockwise (Up wraps to Right).
func (h Heading) TurnLeft() Heading {
	return Heading((int(h) + headingCount - 1) % headingCount)
}

// TurnRight rotates a quarter-turn clockwise (Right wraps to Up).
func (h Heading) TurnRight() Heading {
	return Heading((int(h) + 1) % headingCount)
}

// Vector returns the coordinate offset of one step in this heading.
func (h Heading) Vector() Coordinate {
	switch h {
	case Up:
		return Coordinate{X: 0, Y: -1}
	case Left:
		return Coordinate{X: -1, Y: 0}
	case Down:
		return Coordinate{X: 0, Y: 1}
	case Right:
		return Coordinate{X: 1, Y: 0}
	default:
		return Coordinate{}
	}
}

func (h Heading) Valid() bool {
	return h >= Up && h <= Right
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}
