package states

import (
	"fmt"
	"time"
)

// InitializingState: grid allocated, nothing stepped
type InitializingState struct{}

func (s *InitializingState) Phase() Phase { return PhaseInitializing }

func (s *InitializingState) Enter(ctx *SimContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *SimContext) error { return nil }

func (s *InitializingState) Validate(ctx *SimContext) error { return nil }

// RunningState advances the ant every frame
type RunningState struct{}

func (s *RunningState) Phase() Phase { return PhaseRunning }

func (s *RunningState) Enter(ctx *SimContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
		ctx.Logger.Info().
			Int("width", ctx.Width).
			Int("height", ctx.Height).
			Msg("Simulation started")
	}
	return nil
}

func (s *RunningState) Exit(ctx *SimContext) error { return nil }

func (s *RunningState) Validate(ctx *SimContext) error {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return fmt.Errorf("cannot run on a %dx%d grid", ctx.Width, ctx.Height)
	}
	return nil
}

// PausedState keeps rendering without stepping
type PausedState struct{}

func (s *PausedState) Phase() Phase { return PhasePaused }

func (s *PausedState) Enter(ctx *SimContext) error {
	ctx.PauseTime = time.Now()
	ctx.Logger.Info().Msg("Simulation paused")
	return nil
}

func (s *PausedState) Exit(ctx *SimContext) error {
	if !ctx.PauseTime.IsZero() {
		pauseDuration := time.Since(ctx.PauseTime)
		ctx.TotalPauseDuration += pauseDuration
		ctx.PauseTime = time.Time{}
		ctx.Logger.Info().
			Dur("pause_duration", pauseDuration).
			Dur("total_pause_duration", ctx.TotalPauseDuration).
			Msg("Simulation resumed")
	}
	return nil
}

func (s *PausedState) Validate(ctx *SimContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("cannot pause a simulation that hasn't started")
	}
	return nil
}

// FrozenState: the ant sits on the outer ring and never moves again
type FrozenState struct{}

func (s *FrozenState) Phase() Phase { return PhaseFrozen }

func (s *FrozenState) Enter(ctx *SimContext) error {
	ctx.FrozenAt = time.Now()
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Ant reached the boundary")
	return nil
}

func (s *FrozenState) Exit(ctx *SimContext) error { return nil }

func (s *FrozenState) Validate(ctx *SimContext) error { return nil }

// EndedState: the driver quit
type EndedState struct{}

func (s *EndedState) Phase() Phase { return PhaseEnded }

func (s *EndedState) Enter(ctx *SimContext) error {
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Simulation ended")
	return nil
}

func (s *EndedState) Exit(ctx *SimContext) error { return nil }

func (s *EndedState) Validate(ctx *SimContext) error { return nil }

// ResetState wipes the run's timeline before the next Initializing
type ResetState struct{}

func (s *ResetState) Phase() Phase { return PhaseReset }

func (s *ResetState) Enter(ctx *SimContext) error {
	ctx.clearTimes()
	ctx.Logger.Info().Msg("Simulation reset")
	return nil
}

func (s *ResetState) Exit(ctx *SimContext) error { return nil }

func (s *ResetState) Validate(ctx *SimContext) error { return nil }
