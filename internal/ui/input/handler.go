package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is one control action requested during a tick.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandTogglePause
	CommandStep
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandTogglePause:
		return "toggle_pause"
	case CommandStep:
		return "step"
	case CommandReset:
		return "reset"
	default:
		return "none"
	}
}

// KeySource reports edge-triggered key presses and window close requests.
type KeySource interface {
	IsKeyJustPressed(key ebiten.Key) bool
	IsWindowBeingClosed() bool
}

// EbitenKeys reads input from the running ebiten game.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) IsWindowBeingClosed() bool            { return ebiten.IsWindowBeingClosed() }

var bindings = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CommandQuit},
	{ebiten.KeySpace, CommandTogglePause},
	{ebiten.KeyN, CommandStep},
	{ebiten.KeyR, CommandReset},
}

// Handler turns key presses into commands and latches the quit request.
type Handler struct {
	keys KeySource
	quit bool
}

func NewHandler(keys KeySource) *Handler {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &Handler{keys: keys}
}

// Update polls the key source once and returns the commands for this tick
// in binding order. Once quit has been seen only CommandQuit is returned.
func (h *Handler) Update() []Command {
	if h.quit {
		return []Command{CommandQuit}
	}
	if h.keys.IsWindowBeingClosed() {
		h.quit = true
		return []Command{CommandQuit}
	}

	var cmds []Command
	for _, b := range bindings {
		if !h.keys.IsKeyJustPressed(b.key) {
			continue
		}
		if b.cmd == CommandQuit {
			h.quit = true
			return []Command{CommandQuit}
		}
		cmds = append(cmds, b.cmd)
	}
	return cmds
}

// QuitRequested reports whether Escape or a window close has been seen.
func (h *Handler) QuitRequested() bool {
	return h.quit
}
