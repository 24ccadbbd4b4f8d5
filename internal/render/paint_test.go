package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/testutil"
)

func TestPaintDrawsEveryCellThenAnt(t *testing.T) {
	grid := testutil.GridFromRows(t,
		".#.",
		"...",
	)
	palette := DefaultPalette()

	rp := &testutil.RecordingPainter{}
	Paint(rp, grid, core.NewCoordinate(2, 1), palette)

	require.Len(t, rp.Calls, 3*2+1)
	assert.Equal(t, testutil.DrawCall{X: 1, Y: 0, C: palette.On}, rp.Calls[1])
	assert.Equal(t, testutil.DrawCall{X: 0, Y: 0, C: palette.Off}, rp.Calls[0])
	assert.Equal(t, testutil.DrawCall{X: 2, Y: 1, C: palette.Ant}, rp.Calls[6])

	seen := map[[2]int]int{}
	for _, c := range rp.Calls[:6] {
		seen[[2]int{c.X, c.Y}]++
	}
	assert.Len(t, seen, 6)
}

func TestPaintSkipsAntOffGrid(t *testing.T) {
	rp := &testutil.RecordingPainter{}
	Paint(rp, core.MustNewGrid(2, 2), core.NewCoordinate(5, 5), DefaultPalette())
	assert.Len(t, rp.Calls, 4)
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Langton's ant | 0 steps", FormatTitle("Langton's ant", 0))
	assert.Equal(t, "Ant | 11050 steps", FormatTitle("Ant", 11050))
}

func TestPixelBuffer(t *testing.T) {
	pb := NewPixelBuffer(4, 3, 5)
	w, h := pb.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 15, h)
	assert.Len(t, pb.Pix(), 20*15*4)

	red := color.RGBA{255, 0, 0, 255}
	pb.DrawCell(1, 2, red)

	img := pb.Image()
	for py := 10; py < 15; py++ {
		for px := 5; px < 10; px++ {
			assert.Equal(t, red, img.RGBAAt(px, py), "pixel (%d,%d)", px, py)
		}
	}
	assert.Equal(t, color.RGBA{}, img.RGBAAt(4, 10))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 14))

	// Out-of-range cells are dropped rather than wrapping into other rows.
	pb.DrawCell(4, 0, red)
	pb.DrawCell(-1, 0, red)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 5))
}

func TestPixelBufferPaintsGrid(t *testing.T) {
	grid := core.MustNewGrid(3, 3)
	grid.Set(0, 0, core.CellBlack)
	pb := NewPixelBuffer(3, 3, 0)
	assert.Equal(t, 1, pb.CellSize())

	palette := DefaultPalette()
	Paint(pb, grid, core.NewCoordinate(1, 1), palette)

	img := pb.Image()
	assert.Equal(t, palette.On, img.RGBAAt(0, 0))
	assert.Equal(t, palette.Off, img.RGBAAt(2, 2))
	assert.Equal(t, palette.Ant, img.RGBAAt(1, 1))
}
