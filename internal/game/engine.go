package game

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/events"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/states"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/logging"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/render"
)

// EngineConfig holds the parameters of one simulation run
type EngineConfig struct {
	Width         int
	Height        int
	StepsPerFrame int

	// RunID tags every event; a random UUID is used when empty
	RunID    string
	Logger   zerolog.Logger
	EventBus *events.EventBus
}

// FrameResult describes what one call to Engine.Frame did
type FrameResult struct {
	Frame      int
	Steps      int
	TotalSteps int
	Frozen     bool
	// JustFroze is true only on the frame where the ant reached the ring
	JustFroze bool
	Phase     states.Phase
}

// Engine drives an Automaton frame by frame. It owns the Grid.
//
// All methods except SetStepsPerFrame and StepsPerFrame must be called from
// one goroutine (the driver's frame loop).
type Engine struct {
	runID         string
	grid          *core.Grid
	ant           *Automaton
	stepsPerFrame atomic.Int64
	totalSteps    int
	frames        int
	startedAt     time.Time
	closed        bool

	stateMachine *states.StateMachine
	eventBus     *events.EventBus
	logger       zerolog.Logger
}

// NewEngine allocates the grid, places the ant and enters Running (or Frozen
// straight away for grids with no interior).
func NewEngine(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if cfg.StepsPerFrame <= 0 {
		return nil, fmt.Errorf("steps per frame %d: %w", cfg.StepsPerFrame, core.ErrInvalidStepBudget)
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("grid allocation failed: %w", err)
	}

	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	logger := logging.Component(cfg.Logger, "engine").With().
		Str("run_id", cfg.RunID).
		Logger()
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBusWithLogger(cfg.Logger)
	}

	e := &Engine{
		runID:     cfg.RunID,
		grid:      grid,
		ant:       NewAutomaton(grid),
		startedAt: time.Now(),
		eventBus:  cfg.EventBus,
		logger:    logger,
	}
	e.stepsPerFrame.Store(int64(cfg.StepsPerFrame))

	simCtx := states.NewSimContext(cfg.RunID, cfg.Width, cfg.Height, cfg.Logger)
	e.stateMachine = states.NewStateMachine(simCtx, e.eventBus)

	e.eventBus.Publish(events.NewSimulationStartedEvent(cfg.RunID, cfg.Width, cfg.Height, cfg.StepsPerFrame))
	if err := e.start("engine created"); err != nil {
		return nil, err
	}

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("steps_per_frame", cfg.StepsPerFrame).
		Str("ant", e.ant.Position().String()).
		Msg("Engine created successfully")

	return e, nil
}

// start leaves PhaseInitializing.
func (e *Engine) start(reason string) error {
	target := states.PhaseRunning
	if e.ant.AtBoundary() {
		target = states.PhaseFrozen
		reason = "no interior to walk"
	}
	if err := e.stateMachine.TransitionTo(target, reason); err != nil {
		return fmt.Errorf("state machine initialization failed: %w", err)
	}
	return nil
}

// Frame runs one batch of at most StepsPerFrame steps when Running.
func (e *Engine) Frame() FrameResult {
	e.frames++
	res := FrameResult{Frame: e.frames}

	if e.stateMachine.CurrentPhase().CanStep() {
		res.Steps = e.advance(int(e.stepsPerFrame.Load()))
		res.JustFroze = e.ant.AtBoundary()
	}

	res.TotalSteps = e.totalSteps
	res.Frozen = e.ant.AtBoundary()
	res.Phase = e.stateMachine.CurrentPhase()
	return res
}

// StepOnce advances a single step while paused; it is how the driver's
// single-step key works. It returns the number of steps taken (0 or 1).
func (e *Engine) StepOnce() int {
	if e.stateMachine.CurrentPhase() != states.PhasePaused {
		return 0
	}
	return e.advance(1)
}

func (e *Engine) advance(budget int) int {
	n := e.ant.RunBatch(budget)
	e.totalSteps += n

	if n > 0 {
		pos := e.ant.Position()
		e.eventBus.Publish(events.NewBatchCompletedEvent(e.runID, e.frames, n, e.totalSteps, pos.X, pos.Y))
	}

	if e.ant.AtBoundary() {
		e.freeze()
	}
	return n
}

func (e *Engine) freeze() {
	if err := e.stateMachine.TransitionTo(states.PhaseFrozen, "boundary reached"); err != nil {
		e.logger.Warn().Err(err).Msg("Could not enter frozen phase")
		return
	}
	pos := e.ant.Position()
	e.eventBus.Publish(events.NewBoundaryReachedEvent(
		e.runID,
		e.totalSteps,
		pos.X,
		pos.Y,
		e.ant.Heading().String(),
		e.grid.CountBlack(),
	))
}

// Pause stops batches from running; frames keep rendering.
func (e *Engine) Pause() error {
	if e.ant.AtBoundary() {
		return core.NewSimulationError(e.totalSteps, "pause", core.ErrFrozen)
	}
	if err := e.stateMachine.TransitionTo(states.PhasePaused, "pause requested"); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewSimulationPausedEvent(e.runID, e.totalSteps))
	return nil
}

func (e *Engine) Resume() error {
	if e.ant.AtBoundary() {
		return core.NewSimulationError(e.totalSteps, "resume", core.ErrFrozen)
	}
	if err := e.stateMachine.TransitionTo(states.PhaseRunning, "resume requested"); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewSimulationResumedEvent(e.runID, e.totalSteps))
	return nil
}

// TogglePause flips between Running and Paused; it is a no-op otherwise.
func (e *Engine) TogglePause() {
	switch e.stateMachine.CurrentPhase() {
	case states.PhaseRunning:
		_ = e.Pause()
	case states.PhasePaused:
		_ = e.Resume()
	}
}

// Reset clears the grid, re-centres the ant and starts a fresh run under the
// same run ID.
func (e *Engine) Reset() error {
	discarded := e.totalSteps
	if err := e.stateMachine.Restart("reset requested"); err != nil {
		return err
	}
	e.ant.Reset()
	e.totalSteps = 0
	e.frames = 0
	e.closed = false
	e.eventBus.Publish(events.NewSimulationResetEvent(e.runID, discarded))
	return e.start("reset")
}

// SetStepsPerFrame changes the batch size used by later frames. It is safe to
// call from another goroutine (config hot reload).
func (e *Engine) SetStepsPerFrame(n int) error {
	if n <= 0 {
		return core.NewSimulationError(e.totalSteps, "set steps per frame", core.ErrInvalidStepBudget)
	}
	prev := e.stepsPerFrame.Swap(int64(n))
	if int(prev) != n {
		e.eventBus.Publish(events.NewStepBudgetChangedEvent(e.runID, int(prev), n))
	}
	return nil
}

// RunHeadless calls Frame until the ant freezes, maxFrames frames have run
// (0 means no cap) or ctx is done. pace may be nil to run flat out.
func (e *Engine) RunHeadless(ctx context.Context, maxFrames int, pace *FixedStep) (FrameResult, error) {
	var res FrameResult
	for maxFrames <= 0 || e.frames < maxFrames {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res = e.Frame()
		if res.Frozen || !res.Phase.CanStep() {
			return res, nil
		}
		if pace != nil {
			if err := pace.Wait(ctx); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// Close moves the run to Ended and publishes the summary. Calling it again is
// a no-op.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if err := e.stateMachine.TransitionTo(states.PhaseEnded, "driver quit"); err != nil {
		e.logger.Warn().Err(err).Msg("Could not enter ended phase")
	}
	e.eventBus.Publish(events.NewSimulationEndedEvent(
		e.runID,
		e.totalSteps,
		e.frames,
		e.ant.AtBoundary(),
		time.Since(e.startedAt),
	))
}

// Title formats base with the running step count.
func (e *Engine) Title(base string) string {
	return render.FormatTitle(base, e.totalSteps)
}

func (e *Engine) RunID() string              { return e.runID }
func (e *Engine) Grid() *core.Grid           { return e.grid }
func (e *Engine) Automaton() *Automaton      { return e.ant }
func (e *Engine) TotalSteps() int            { return e.totalSteps }
func (e *Engine) Frames() int                { return e.frames }
func (e *Engine) Phase() states.Phase        { return e.stateMachine.CurrentPhase() }
func (e *Engine) StepsPerFrame() int         { return int(e.stepsPerFrame.Load()) }
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }
