package states

import "fmt"

// Phase is the lifecycle phase of one simulation run. It sits above the
// automaton's own Running/Frozen flag and adds the driver-level phases.
type Phase int

const (
	// PhaseInitializing - grid allocated, ant placed, nothing stepped yet
	PhaseInitializing Phase = iota

	// PhaseRunning - batches advance every frame
	PhaseRunning

	// PhasePaused - frames render but no batches run
	PhasePaused

	// PhaseFrozen - the ant reached the outer ring; the last frame is kept
	PhaseFrozen

	// PhaseEnded - the driver has quit
	PhaseEnded

	// PhaseReset - grid cleared, about to start again
	PhaseReset
)

var phaseNames = map[Phase]string{
	PhaseInitializing: "Initializing",
	PhaseRunning:      "Running",
	PhasePaused:       "Paused",
	PhaseFrozen:       "Frozen",
	PhaseEnded:        "Ended",
	PhaseReset:        "Reset",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// IsTerminal returns true if nothing but a reset can leave this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseFrozen || p == PhaseEnded
}

// CanStep returns true if batches should run in this phase
func (p Phase) CanStep() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseInitializing:
		return []Phase{PhaseRunning, PhaseFrozen, PhaseEnded}
	case PhaseRunning:
		return []Phase{PhasePaused, PhaseFrozen, PhaseEnded, PhaseReset}
	case PhasePaused:
		return []Phase{PhaseRunning, PhaseFrozen, PhaseEnded, PhaseReset}
	case PhaseFrozen:
		return []Phase{PhaseEnded, PhaseReset}
	case PhaseEnded:
		return []Phase{PhaseReset}
	case PhaseReset:
		return []Phase{PhaseInitializing}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a Phase, defaulting to PhaseInitializing
func ParsePhase(s string) Phase {
	for p, name := range phaseNames {
		if name == s {
			return p
		}
	}
	return PhaseInitializing
}
