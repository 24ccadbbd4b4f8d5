package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/logging"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/render"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/ui/input"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/ui/renderer"
)

// WindowOptions are the driver-side settings of the window.
type WindowOptions struct {
	Title    string
	CellSize int
	FPS      int
	ShowHUD  bool
	Palette  render.Palette
}

// UIGame adapts an Engine to ebiten.Game: one engine frame per tick.
type UIGame struct {
	engine   *game.Engine
	opts     WindowOptions
	handler  *input.Handler
	quit     core.QuitSource
	grid     *renderer.GridRenderer
	hud      *renderer.HUDRenderer
	logger   zerolog.Logger
	setTitle func(string)
}

// NewUIGame creates a new Ebitengine game instance. keys may be nil to read
// the real keyboard.
func NewUIGame(engine *game.Engine, opts WindowOptions, keys input.KeySource, logger zerolog.Logger) *UIGame {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	g := engine.Grid()
	handler := input.NewHandler(keys)
	ui := &UIGame{
		engine:   engine,
		opts:     opts,
		handler:  handler,
		quit:     handler,
		grid:     renderer.NewGridRenderer(g.Width(), g.Height(), opts.CellSize, opts.Palette),
		logger:   logging.Component(logger, "window"),
		setTitle: ebiten.SetWindowTitle,
	}
	if opts.ShowHUD {
		ui.hud = renderer.NewHUDRenderer(basicfont.Face7x13)
	}
	return ui
}

// Run opens the window and blocks until the user quits.
func (g *UIGame) Run() error {
	w, h := g.grid.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowClosingHandled(true)
	if g.opts.FPS > 0 {
		ebiten.SetTPS(g.opts.FPS)
	}
	g.logger.Info().Int("width", w).Int("height", h).Int("tps", ebiten.TPS()).Msg("Opening window")
	return ebiten.RunGame(g)
}

// Update proceeds the simulation by one frame. The quit source is polled
// once per frame after input is read.
func (g *UIGame) Update() error {
	cmds := g.handler.Update()
	if g.quit.QuitRequested() {
		g.logger.Debug().Msg("Quit requested")
		g.engine.Close()
		return ebiten.Termination
	}
	for _, cmd := range cmds {
		g.apply(cmd)
	}

	res := g.engine.Frame()
	if res.Steps > 0 {
		g.setTitle(g.engine.Title(g.opts.Title))
	}
	return nil
}

func (g *UIGame) apply(cmd input.Command) {
	g.logger.Debug().Stringer("command", cmd).Msg("Input")
	switch cmd {
	case input.CommandTogglePause:
		g.engine.TogglePause()
	case input.CommandStep:
		if g.engine.StepOnce() > 0 {
			g.setTitle(g.engine.Title(g.opts.Title))
		}
	case input.CommandReset:
		if err := g.engine.Reset(); err != nil {
			g.logger.Error().Err(err).Msg("Reset failed")
			return
		}
		g.setTitle(g.engine.Title(g.opts.Title))
	}
}

// Draw renders the grid, the ant and the optional HUD.
func (g *UIGame) Draw(screen *ebiten.Image) {
	ant := g.engine.Automaton()
	g.grid.Draw(screen, g.engine.Grid(), ant.Position())

	if g.hud != nil {
		pos := ant.Position()
		g.hud.Draw(screen, renderer.HUDInfo{
			Steps:         g.engine.TotalSteps(),
			StepsPerFrame: g.engine.StepsPerFrame(),
			Phase:         g.engine.Phase(),
			X:             pos.X,
			Y:             pos.Y,
			Heading:       ant.Heading().String(),
		})
	}
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.grid.Size()
}

// QuitRequested reports whether the user asked to close the window.
func (g *UIGame) QuitRequested() bool {
	return g.quit.QuitRequested()
}
