package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/common"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/config"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/events"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/logging"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/monitoring"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/render"
)

const (
	throughputInterval = 5 * time.Second
	stepsPerFrameKey   = "simulation.steps_per_frame"
)

type rootOptions struct {
	configPath    string
	logLevel      string
	width         int
	height        int
	stepsPerFrame int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "langton",
		Short: "Langton's ant on a fixed grid",
		Long: `Langton's ant walks a grid of white cells. On white it paints the cell
black and turns left; on black it paints it white and turns right; then it
steps forward. The run freezes once the ant reaches the outer ring.

Examples:
  langton window
  langton tui --steps-per-frame 5
  langton run --width 64 --height 64 --print-grid`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config YAML")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "Grid width in cells")
	root.PersistentFlags().IntVar(&opts.height, "height", 0, "Grid height in cells")
	root.PersistentFlags().IntVar(&opts.stepsPerFrame, "steps-per-frame", 0, "Ant steps per rendered frame")

	windowCmd := newWindowCmd(opts)
	root.AddCommand(windowCmd)
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newRunCmd(opts))

	// Bare "langton" opens the window.
	root.RunE = windowCmd.RunE
	root.Flags().AddFlagSet(windowCmd.Flags())

	return root
}

// loadConfig reads the config file and applies any flags given explicitly.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Init(o.configPath); err != nil {
		return nil, err
	}

	overrides := []struct {
		flag string
		key  string
		val  interface{}
	}{
		{"log-level", "logging.level", o.logLevel},
		{"width", "simulation.width", o.width},
		{"height", "simulation.height", o.height},
		{"steps-per-frame", stepsPerFrameKey, o.stepsPerFrame},
	}
	for _, ov := range overrides {
		if !cmd.Flags().Changed(ov.flag) {
			continue
		}
		if err := config.Set(ov.key, ov.val); err != nil {
			return nil, fmt.Errorf("--%s: %w", ov.flag, err)
		}
	}
	return config.Get(), nil
}

// session is one engine plus the background work that lives as long as it.
type session struct {
	engine  *game.Engine
	logger  zerolog.Logger
	monitor *monitoring.ThroughputMonitor
	cancel  context.CancelFunc
}

// newSession sets up logging and wires an engine whose events are logged.
func newSession(ctx context.Context, cfg *config.Config, logOut io.Writer) (*session, error) {
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, logOut)

	bus := events.NewEventBusWithLogger(logger)
	lifecycle := subscribers.NewLoggerSubscriber("lifecycle-logger", logger, zerolog.InfoLevel)
	lifecycle.SetEventFilter([]string{
		events.TypeSimulationStarted,
		events.TypeSimulationPaused,
		events.TypeSimulationResumed,
		events.TypeSimulationReset,
		events.TypeSimulationEnded,
		events.TypeBoundaryReached,
		events.TypeStepBudgetChanged,
	})
	bus.Subscribe(lifecycle)

	progress := subscribers.NewLoggerSubscriber("progress-logger", logger, zerolog.DebugLevel)
	progress.SetEventFilter([]string{events.TypeBatchCompleted, events.TypeStateTransition})
	progress.SetDevMode(cfg.Logging.Level == "trace")
	bus.Subscribe(progress)

	engine, err := game.NewEngine(ctx, game.EngineConfig{
		Width:         cfg.Simulation.Width,
		Height:        cfg.Simulation.Height,
		StepsPerFrame: cfg.Simulation.StepsPerFrame,
		Logger:        logger,
		EventBus:      bus,
	})
	if err != nil {
		return nil, err
	}

	monitor := monitoring.NewThroughputMonitor(logger, throughputInterval)
	bus.Subscribe(monitor)
	monitorCtx, cancel := context.WithCancel(ctx)
	monitor.Start(monitorCtx)

	if path := config.ConfigFilePath(); path != "" {
		logger.Info().Str("config", path).Msg("Loaded config file")
	}
	return &session{engine: engine, logger: logger, monitor: monitor, cancel: cancel}, nil
}

// Close ends the run and stops the background monitor. It is safe to call
// more than once.
func (s *session) Close() {
	s.engine.Close()
	s.cancel()
}

func paletteFrom(cfg *config.Config) render.Palette {
	return render.Palette{
		On:  common.RGB(cfg.Colors.On),
		Off: common.RGB(cfg.Colors.Off),
		Ant: common.RGB(cfg.Colors.Ant),
	}
}

// watchStepBudget hot-reloads steps_per_frame into a live engine.
func watchStepBudget(engine *game.Engine, logger zerolog.Logger) {
	if config.ConfigFilePath() == "" {
		return
	}
	config.WatchConfig(stepBudgetReloader(engine, logger))
}

// stepBudgetReloader applies a reloaded config's steps_per_frame to engine.
// A value pinned by --steps-per-frame outranks the file and is left alone.
func stepBudgetReloader(engine *game.Engine, logger zerolog.Logger) func(*config.Config, error) {
	return func(c *config.Config, err error) {
		if err != nil {
			logger.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		if config.Overridden(stepsPerFrameKey) {
			logger.Warn().
				Int("steps_per_frame", c.Simulation.StepsPerFrame).
				Msg("steps_per_frame is set by flag; config file change not applied")
			return
		}
		if err := engine.SetStepsPerFrame(c.Simulation.StepsPerFrame); err != nil {
			logger.Warn().Err(err).Msg("Could not apply steps_per_frame")
		}
	}
}
