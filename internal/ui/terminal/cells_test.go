package terminal

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func TestCellBufferDrawCell(t *testing.T) {
	b := NewCellBuffer(3, 3, black)
	b.DrawCell(1, 2, white)
	b.DrawCell(0, 0, color.Gray{Y: 255})
	b.DrawCell(5, 5, red)
	b.DrawCell(-1, 0, red)

	assert.Equal(t, white, b.at(1, 2))
	assert.Equal(t, white, b.at(0, 0), "non-RGBA colours are converted")
	assert.Equal(t, black, b.at(2, 2))
	assert.Equal(t, black, b.at(0, 3), "row past the grid is fill")
}

func TestCellBufferRenderShape(t *testing.T) {
	tests := []struct {
		w, h, rows int
	}{
		{4, 4, 2},
		{4, 5, 3},
		{1, 1, 1},
	}
	for _, tt := range tests {
		b := NewCellBuffer(tt.w, tt.h, black)
		assert.Equal(t, tt.rows, b.Rows())

		out := b.Render()
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, tt.rows)
		for _, l := range lines {
			assert.Equal(t, tt.w, strings.Count(l, halfBlock))
		}
	}
}

func TestCellBufferCachesStylesPerColourPair(t *testing.T) {
	b := NewCellBuffer(4, 2, black)
	b.DrawCell(0, 0, white)
	b.DrawCell(3, 1, red)
	b.Render()
	// (white,black) (black,black) (black,red)
	assert.Len(t, b.styles, 3)

	b.Render()
	assert.Len(t, b.styles, 3)
}
