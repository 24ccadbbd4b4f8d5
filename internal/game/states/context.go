package states

import (
	"time"

	"github.com/rs/zerolog"
)

// SimContext carries run-wide information the phase callbacks read and update
type SimContext struct {
	RunID  string
	Logger zerolog.Logger

	Width, Height int

	// StartTime is when PhaseRunning was first entered
	StartTime time.Time

	// PauseTime is when the run was paused (if paused)
	PauseTime time.Time

	// TotalPauseDuration tracks total time spent paused
	TotalPauseDuration time.Duration

	// FrozenAt is when the ant reached the boundary
	FrozenAt time.Time
}

// NewSimContext creates a new simulation context
func NewSimContext(runID string, width, height int, logger zerolog.Logger) *SimContext {
	return &SimContext{
		RunID:  runID,
		Width:  width,
		Height: height,
		Logger: logger.With().Str("run_id", runID).Logger(),
	}
}

// GetElapsedTime returns the running time since start, excluding pauses.
// Once frozen the clock stops.
func (sc *SimContext) GetElapsedTime() time.Duration {
	if sc.StartTime.IsZero() {
		return 0
	}
	end := time.Now()
	if !sc.FrozenAt.IsZero() {
		end = sc.FrozenAt
	}
	return end.Sub(sc.StartTime) - sc.TotalPauseDuration
}

// clearTimes forgets everything about the previous run's timeline
func (sc *SimContext) clearTimes() {
	sc.StartTime = time.Time{}
	sc.PauseTime = time.Time{}
	sc.FrozenAt = time.Time{}
	sc.TotalPauseDuration = 0
}
