package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/config"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/ui/terminal"
)

// terminalGridSize fits the grid to the terminal: one column per cell and two
// cells per row, leaving a row for the status line.
func terminalGridSize(cols, rows int) (int, int) {
	w, h := cols, (rows-1)*2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// fitToTerminal sizes the grid to the terminal on each axis the user did not
// set explicitly and returns the updated config.
func fitToTerminal(widthSet, heightSet bool, cols, rows int) (*config.Config, error) {
	w, h := terminalGridSize(cols, rows)
	if !widthSet {
		if err := config.Set("simulation.width", w); err != nil {
			return nil, err
		}
	}
	if !heightSet {
		if err := config.Set("simulation.height", h); err != nil {
			return nil, err
		}
	}
	return config.Get(), nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Watch the ant in the terminal",
		Long: `Draw the grid in the terminal, two cells per character row.
Without --width/--height the grid fills the terminal.

Controls:
  Space      - Pause / resume
  N          - Single step while paused
  R          - Reset
  Q/Esc      - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.loadConfig(cmd); err != nil {
				return err
			}

			cols, rows := 80, 24
			if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
				cols, rows = w, h
			}
			cfg, err := fitToTerminal(cmd.Flags().Changed("width"), cmd.Flags().Changed("height"), cols, rows)
			if err != nil {
				return err
			}

			// The terminal is the display, so logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logOut = f
			}

			s, err := newSession(cmd.Context(), cfg, logOut)
			if err != nil {
				return err
			}
			defer s.Close()
			engine, logger := s.engine, s.logger
			watchStepBudget(engine, logger)

			model := terminal.NewModel(engine, terminal.Options{
				Title:   cfg.UI.Window.Title,
				FPS:     cfg.UI.Window.FPS,
				Palette: paletteFrom(cfg),
			}, logger)

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				logger.Error().Err(err).Msg("Terminal program failed")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	return cmd
}
