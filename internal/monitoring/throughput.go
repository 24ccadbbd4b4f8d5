package monitoring

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/events"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/logging"
)

// ThroughputMonitor tracks how many ant steps are simulated per second.
// It subscribes to batch events and logs a rate on every interval.
type ThroughputMonitor struct {
	mu            sync.RWMutex
	logger        zerolog.Logger
	checkInterval time.Duration
	now           func() time.Time

	totalSteps  int
	frames      int
	windowSteps int
	windowStart time.Time
	lastRate    float64
	peakRate    float64
	frozen      bool

	done chan struct{}
}

// NewThroughputMonitor creates a new monitor that reports every interval
func NewThroughputMonitor(logger zerolog.Logger, interval time.Duration) *ThroughputMonitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	tm := &ThroughputMonitor{
		logger:        logging.Component(logger, "throughput"),
		checkInterval: interval,
		now:           time.Now,
		done:          make(chan struct{}),
	}
	tm.windowStart = tm.now()
	return tm
}

func (tm *ThroughputMonitor) ID() string { return "throughput-monitor" }

func (tm *ThroughputMonitor) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeBatchCompleted, events.TypeBoundaryReached, events.TypeSimulationReset:
		return true
	}
	return false
}

func (tm *ThroughputMonitor) HandleEvent(event events.Event) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	switch e := event.(type) {
	case *events.BatchCompletedEvent:
		tm.totalSteps = e.TotalSteps
		tm.frames++
		tm.windowSteps += e.Steps
	case *events.BoundaryReachedEvent:
		tm.frozen = true
	case *events.SimulationResetEvent:
		tm.totalSteps = 0
		tm.frames = 0
		tm.windowSteps = 0
		tm.windowStart = tm.now()
		tm.frozen = false
	}
}

// Start runs the reporting loop until ctx is done. Call it once.
func (tm *ThroughputMonitor) Start(ctx context.Context) {
	go tm.monitor(ctx)
}

// Done is closed once the reporting loop has exited.
func (tm *ThroughputMonitor) Done() <-chan struct{} {
	return tm.done
}

func (tm *ThroughputMonitor) monitor(ctx context.Context) {
	defer close(tm.done)
	defer func() {
		if r := recover(); r != nil {
			tm.logger.Error().Interface("panic", r).Msg("Throughput monitor panicked")
		}
	}()

	ticker := time.NewTicker(tm.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tm.check()
		case <-ctx.Done():
			return
		}
	}
}

// check closes the current window and logs its rate.
func (tm *ThroughputMonitor) check() {
	tm.mu.Lock()
	now := tm.now()
	elapsed := now.Sub(tm.windowStart).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(tm.windowSteps) / elapsed
	}
	tm.lastRate = rate
	if rate > tm.peakRate {
		tm.peakRate = rate
	}
	tm.windowSteps = 0
	tm.windowStart = now
	m := tm.metricsLocked()
	tm.mu.Unlock()

	if m.Frozen {
		return
	}
	tm.logger.Debug().
		Int("total_steps", m.TotalSteps).
		Int("frames", m.Frames).
		Float64("steps_per_sec", m.StepsPerSecond).
		Float64("peak_steps_per_sec", m.PeakStepsPerSecond).
		Msg("Throughput metrics")
}

// GetMetrics returns current throughput metrics
func (tm *ThroughputMonitor) GetMetrics() ThroughputMetrics {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.metricsLocked()
}

func (tm *ThroughputMonitor) metricsLocked() ThroughputMetrics {
	return ThroughputMetrics{
		TotalSteps:         tm.totalSteps,
		Frames:             tm.frames,
		StepsPerSecond:     tm.lastRate,
		PeakStepsPerSecond: tm.peakRate,
		Frozen:             tm.frozen,
	}
}

// ThroughputMetrics contains step rate statistics
type ThroughputMetrics struct {
	TotalSteps         int     `json:"total_steps"`
	Frames             int     `json:"frames"`
	StepsPerSecond     float64 `json:"steps_per_sec"`
	PeakStepsPerSecond float64 `json:"peak_steps_per_sec"`
	Frozen             bool    `json:"frozen"`
}
