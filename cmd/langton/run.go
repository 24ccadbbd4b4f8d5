package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		maxFrames int
		realtime  bool
		printGrid bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run without a display until the ant freezes",
		Long: `Run frames until the ant reaches the outer ring or --max-frames is hit,
then print a summary. --realtime paces frames at ui.window.fps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-frames") {
				cfg.Simulation.MaxFrames = maxFrames
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s, err := newSession(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()
			engine, logger := s.engine, s.logger

			var pace *game.FixedStep
			if realtime {
				pace = game.NewFixedStep(cfg.UI.Window.FPS)
			}

			res, err := engine.RunHeadless(ctx, cfg.Simulation.MaxFrames, pace)
			if err != nil {
				logger.Warn().Err(err).Int("steps", res.TotalSteps).Msg("Run interrupted")
				return err
			}

			out := cmd.OutOrStdout()
			ant := engine.Automaton()
			fmt.Fprintln(out, engine.Title(cfg.UI.Window.Title))
			fmt.Fprintf(out, "frames=%d frozen=%t ant=%s heading=%s black=%d checksum=%016x\n",
				res.Frame, res.Frozen, ant.Position(), ant.Heading(), engine.Grid().CountBlack(), engine.Grid().Checksum())
			if printGrid {
				fmt.Fprint(out, engine.Grid().String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFrames, "max-frames", 0, "Stop after this many frames (0 = until frozen)")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Pace frames at the configured fps")
	cmd.Flags().BoolVar(&printGrid, "print-grid", false, "Print the final grid")
	return cmd
}
