package testutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
)

func TestGridFromRows(t *testing.T) {
	grid := GridFromRows(t,
		".#.",
		"##.",
	)
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.Equal(t, ".#.\n##.\n", grid.String())
	assert.Equal(t, 3, grid.CountBlack())
}

func TestRecordingPainter(t *testing.T) {
	var rp RecordingPainter
	var _ core.CellPainter = &rp

	red := color.RGBA{255, 0, 0, 255}
	rp.DrawCell(1, 1, color.Black)
	rp.DrawCell(1, 1, red)

	assert.Len(t, rp.Calls, 2)
	assert.Equal(t, red, rp.At(1, 1))
	assert.Nil(t, rp.At(0, 0))
}

func TestQuitFlag(t *testing.T) {
	var q QuitFlag
	var src core.QuitSource = &q
	assert.False(t, src.QuitRequested())
	q = true
	assert.True(t, src.QuitRequested())
}

func TestAssertPanic(t *testing.T) {
	AssertPanic(t, func() { core.MustNewGrid(0, 1) })
}
