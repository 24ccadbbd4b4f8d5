package game

import (
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
)

// Automaton is a single Langton's ant walking over a Grid it does not own.
//
// On a white cell the ant paints it black and turns counter-clockwise; on a
// black cell it paints it white and turns clockwise. It then moves one cell.
// Landing on the grid's outer ring freezes it for good.
type Automaton struct {
	grid       *core.Grid
	pos        core.Coordinate
	heading    core.Heading
	atBoundary bool
	steps      int
}

// NewAutomaton places an ant at the centre of grid, heading Up.
func NewAutomaton(grid *core.Grid) *Automaton {
	a := &Automaton{grid: grid}
	a.place()
	return a
}

// place puts the ant at its start cell. A grid too small to have an interior
// (either side < 3) has its centre on the ring, so the ant starts frozen.
func (a *Automaton) place() {
	a.pos = core.NewCoordinate(a.grid.W/2, a.grid.H/2)
	a.heading = core.Up
	a.steps = 0
	a.atBoundary = a.grid.OnRing(a.pos.X, a.pos.Y)
}

// Step applies the transition rule once and reports whether the ant is now
// on the boundary. A frozen ant is left untouched.
func (a *Automaton) Step() bool {
	if a.atBoundary {
		return true
	}

	if a.grid.Toggle(a.pos.X, a.pos.Y) == core.CellWhite {
		a.heading = a.heading.TurnLeft()
	} else {
		a.heading = a.heading.TurnRight()
	}

	a.pos = a.pos.Move(a.heading)
	a.steps++

	if a.grid.OnRing(a.pos.X, a.pos.Y) {
		a.atBoundary = true
	}
	return a.atBoundary
}

// RunBatch calls Step up to maxSteps times, stopping right after the step
// that reaches the boundary. It returns the number of steps executed.
func (a *Automaton) RunBatch(maxSteps int) int {
	n := 0
	for n < maxSteps && !a.atBoundary {
		n++
		if a.Step() {
			break
		}
	}
	return n
}

// Reset clears the grid and returns the ant to its start.
func (a *Automaton) Reset() {
	a.grid.Clear()
	a.place()
}

func (a *Automaton) Grid() *core.Grid          { return a.grid }
func (a *Automaton) Position() core.Coordinate { return a.pos }
func (a *Automaton) Heading() core.Heading     { return a.heading }
func (a *Automaton) AtBoundary() bool          { return a.atBoundary }

// Steps returns how many transitions have been applied since the last reset.
func (a *Automaton) Steps() int { return a.steps }
