// Package terminal runs the simulation inside a Bubble Tea program.
package terminal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/logging"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/render"
)

// TickMsg is sent to trigger one engine frame.
type TickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options are the driver-side settings of the terminal view.
type Options struct {
	Title   string
	FPS     int
	Palette render.Palette
}

// Model is the Bubble Tea model driving an Engine.
type Model struct {
	engine   *game.Engine
	opts     Options
	cells    *CellBuffer
	logger   zerolog.Logger
	quitting bool
}

func NewModel(engine *game.Engine, opts Options, logger zerolog.Logger) Model {
	g := engine.Grid()
	return Model{
		engine: engine,
		opts:   opts,
		cells:  NewCellBuffer(g.Width(), g.Height(), opts.Palette.Off),
		logger: logging.Component(logger, "terminal"),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.QuitRequested() {
			return m, nil
		}
		m.engine.Frame()
		return m, tickCmd(m.opts.FPS)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		m.engine.Close()
		return m, tea.Quit
	case " ":
		m.engine.TogglePause()
	case "n":
		m.engine.StepOnce()
	case "r":
		if err := m.engine.Reset(); err != nil {
			m.logger.Error().Err(err).Msg("Reset failed")
		}
	}
	return m, nil
}

// View draws the grid followed by a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	ant := m.engine.Automaton()
	render.Paint(m.cells, m.engine.Grid(), ant.Position(), m.opts.Palette)

	status := fmt.Sprintf("%s  [%s]  space: pause  n: step  r: reset  q: quit",
		m.engine.Title(m.opts.Title), m.engine.Phase())
	return m.cells.Render() + "\n" + statusStyle.Render(status)
}

// QuitRequested reports whether a quit key has been pressed.
func (m Model) QuitRequested() bool {
	return m.quitting
}
