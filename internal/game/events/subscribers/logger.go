package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging the full JSON payload of each event
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("run_id", event.RunID()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)
	if ls.logLevel == zerolog.NoLevel {
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.SimulationStartedEvent:
		logEvent.
			Int("width", e.Width).
			Int("height", e.Height).
			Int("steps_per_frame", e.StepsPerFrame)

	case *events.BatchCompletedEvent:
		logEvent.
			Int("frame", e.Frame).
			Int("steps", e.Steps).
			Int("total_steps", e.TotalSteps).
			Int("ant_x", e.AntX).
			Int("ant_y", e.AntY)

	case *events.BoundaryReachedEvent:
		logEvent.
			Int("total_steps", e.TotalSteps).
			Int("ant_x", e.AntX).
			Int("ant_y", e.AntY).
			Str("heading", e.Heading).
			Int("black_cells", e.BlackCells)

	case *events.PausedEvent:
		logEvent.Int("total_steps", e.TotalSteps)

	case *events.SimulationResetEvent:
		logEvent.Int("discarded_steps", e.DiscardedSteps)

	case *events.StepBudgetChangedEvent:
		logEvent.
			Int("previous", e.Previous).
			Int("current", e.Current)

	case *events.SimulationEndedEvent:
		logEvent.
			Int("total_steps", e.TotalSteps).
			Int("frames", e.Frames).
			Bool("frozen", e.Frozen).
			Dur("duration", e.Duration)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_state", e.FromState).
			Str("to_state", e.ToState).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Simulation event")
}
