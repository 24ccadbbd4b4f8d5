package events

import (
	"time"
)

// Event type constants
const (
	TypeSimulationStarted = "simulation.started"
	TypeSimulationPaused  = "simulation.paused"
	TypeSimulationResumed = "simulation.resumed"
	TypeSimulationReset   = "simulation.reset"
	TypeSimulationEnded   = "simulation.ended"
	TypeBatchCompleted    = "batch.completed"
	TypeBoundaryReached   = "boundary.reached"
	TypeStepBudgetChanged = "step_budget.changed"
	TypeStateTransition   = "state.transition"
)

// SimulationStartedEvent is published once the grid and ant are in place
type SimulationStartedEvent struct {
	BaseEvent
	Width         int `json:"width"`
	Height        int `json:"height"`
	StepsPerFrame int `json:"steps_per_frame"`
}

func NewSimulationStartedEvent(runID string, width, height, stepsPerFrame int) *SimulationStartedEvent {
	return &SimulationStartedEvent{
		BaseEvent:     newBase(TypeSimulationStarted, runID),
		Width:         width,
		Height:        height,
		StepsPerFrame: stepsPerFrame,
	}
}

// BatchCompletedEvent is published after every frame that advanced the ant
type BatchCompletedEvent struct {
	BaseEvent
	Frame      int `json:"frame"`
	Steps      int `json:"steps"`
	TotalSteps int `json:"total_steps"`
	AntX       int `json:"ant_x"`
	AntY       int `json:"ant_y"`
}

func NewBatchCompletedEvent(runID string, frame, steps, total, antX, antY int) *BatchCompletedEvent {
	return &BatchCompletedEvent{
		BaseEvent:  newBase(TypeBatchCompleted, runID),
		Frame:      frame,
		Steps:      steps,
		TotalSteps: total,
		AntX:       antX,
		AntY:       antY,
	}
}

// BoundaryReachedEvent is published once, when the ant lands on the outer ring
type BoundaryReachedEvent struct {
	BaseEvent
	TotalSteps int    `json:"total_steps"`
	AntX       int    `json:"ant_x"`
	AntY       int    `json:"ant_y"`
	Heading    string `json:"heading"`
	BlackCells int    `json:"black_cells"`
}

func NewBoundaryReachedEvent(runID string, total, antX, antY int, heading string, black int) *BoundaryReachedEvent {
	return &BoundaryReachedEvent{
		BaseEvent:  newBase(TypeBoundaryReached, runID),
		TotalSteps: total,
		AntX:       antX,
		AntY:       antY,
		Heading:    heading,
		BlackCells: black,
	}
}

// PausedEvent is published when stepping is suspended or resumed
type PausedEvent struct {
	BaseEvent
	TotalSteps int `json:"total_steps"`
}

func NewSimulationPausedEvent(runID string, total int) *PausedEvent {
	return &PausedEvent{BaseEvent: newBase(TypeSimulationPaused, runID), TotalSteps: total}
}

func NewSimulationResumedEvent(runID string, total int) *PausedEvent {
	return &PausedEvent{BaseEvent: newBase(TypeSimulationResumed, runID), TotalSteps: total}
}

// SimulationResetEvent is published after the grid is cleared and the ant re-centred
type SimulationResetEvent struct {
	BaseEvent
	DiscardedSteps int `json:"discarded_steps"`
}

func NewSimulationResetEvent(runID string, discarded int) *SimulationResetEvent {
	return &SimulationResetEvent{BaseEvent: newBase(TypeSimulationReset, runID), DiscardedSteps: discarded}
}

// StepBudgetChangedEvent is published when steps-per-frame changes at runtime
type StepBudgetChangedEvent struct {
	BaseEvent
	Previous int `json:"previous"`
	Current  int `json:"current"`
}

func NewStepBudgetChangedEvent(runID string, previous, current int) *StepBudgetChangedEvent {
	return &StepBudgetChangedEvent{
		BaseEvent: newBase(TypeStepBudgetChanged, runID),
		Previous:  previous,
		Current:   current,
	}
}

// SimulationEndedEvent is published when the driver tears the simulation down
type SimulationEndedEvent struct {
	BaseEvent
	TotalSteps int           `json:"total_steps"`
	Frames     int           `json:"frames"`
	Frozen     bool          `json:"frozen"`
	Duration   time.Duration `json:"duration"`
}

func NewSimulationEndedEvent(runID string, total, frames int, frozen bool, duration time.Duration) *SimulationEndedEvent {
	return &SimulationEndedEvent{
		BaseEvent:  newBase(TypeSimulationEnded, runID),
		TotalSteps: total,
		Frames:     frames,
		Frozen:     frozen,
		Duration:   duration,
	}
}

// StateTransitionEvent is published by the phase machine
type StateTransitionEvent struct {
	BaseEvent
	FromState string `json:"from_state"`
	ToState   string `json:"to_state"`
	Reason    string `json:"reason"`
}

func NewStateTransitionEvent(runID, from, to, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, runID),
		FromState: from,
		ToState:   to,
		Reason:    reason,
	}
}
