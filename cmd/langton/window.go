package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/ui"
)

func newWindowCmd(opts *rootOptions) *cobra.Command {
	var showHUD bool

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open a window and watch the ant",
		Long: `Open an ebiten window sized width*cell_size by height*cell_size.

Controls:
  Space   - Pause / resume
  N       - Single step while paused
  R       - Reset
  Esc     - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hud") {
				cfg.UI.Window.ShowHUD = showHUD
			}

			s, err := newSession(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()
			engine, logger := s.engine, s.logger
			watchStepBudget(engine, logger)

			g := ui.NewUIGame(engine, ui.WindowOptions{
				Title:    cfg.UI.Window.Title,
				CellSize: cfg.UI.Window.CellSize,
				FPS:      cfg.UI.Window.FPS,
				ShowHUD:  cfg.UI.Window.ShowHUD,
				Palette:  paletteFrom(cfg),
			}, nil, logger)

			if err := g.Run(); err != nil && !errors.Is(err, ebiten.Termination) {
				logger.Error().Err(err).Msg("Window failed")
				return err
			}
			logger.Info().Int("steps", engine.TotalSteps()).Msg("Window closed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHUD, "hud", false, "Show the step counter overlay")
	return cmd
}
