package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
)

type fakeKeys struct {
	pressed map[ebiten.Key]bool
	closing bool
}

func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return f.pressed[key] }
func (f *fakeKeys) IsWindowBeingClosed() bool            { return f.closing }

func TestHandlerCommands(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []Command
	}{
		{name: "nothing", want: nil},
		{name: "space", pressed: []ebiten.Key{ebiten.KeySpace}, want: []Command{CommandTogglePause}},
		{name: "n", pressed: []ebiten.Key{ebiten.KeyN}, want: []Command{CommandStep}},
		{name: "r", pressed: []ebiten.Key{ebiten.KeyR}, want: []Command{CommandReset}},
		{
			name:    "several",
			pressed: []ebiten.Key{ebiten.KeyR, ebiten.KeySpace},
			want:    []Command{CommandTogglePause, CommandReset},
		},
		{
			name:    "escape wins",
			pressed: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEscape},
			want:    []Command{CommandQuit},
		},
		{name: "unbound", pressed: []ebiten.Key{ebiten.KeyA}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &fakeKeys{pressed: map[ebiten.Key]bool{}}
			for _, k := range tt.pressed {
				keys.pressed[k] = true
			}
			h := NewHandler(keys)
			assert.Equal(t, tt.want, h.Update())
		})
	}
}

func TestHandlerQuitLatches(t *testing.T) {
	keys := &fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyEscape: true}}
	h := NewHandler(keys)

	var src core.QuitSource = h
	assert.False(t, src.QuitRequested())

	h.Update()
	assert.True(t, src.QuitRequested())

	keys.pressed = map[ebiten.Key]bool{ebiten.KeySpace: true}
	assert.Equal(t, []Command{CommandQuit}, h.Update())
}

func TestHandlerWindowClose(t *testing.T) {
	keys := &fakeKeys{closing: true}
	h := NewHandler(keys)
	assert.Equal(t, []Command{CommandQuit}, h.Update())
	assert.True(t, h.QuitRequested())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "quit", CommandQuit.String())
	assert.Equal(t, "toggle_pause", CommandTogglePause.String())
	assert.Equal(t, "step", CommandStep.String())
	assert.Equal(t, "reset", CommandReset.String())
	assert.Equal(t, "none", Command(42).String())
}
