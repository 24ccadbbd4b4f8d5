package render

import (
	"fmt"
	"image/color"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/common"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
)

// Palette picks the colours for the two cell states and the ant.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
	Ant color.RGBA
}

// DefaultPalette greys cells by value and marks the ant red.
func DefaultPalette() Palette {
	return Palette{On: common.CellOnColor, Off: common.CellOffColor, Ant: common.AntColor}
}

func (p Palette) cell(v uint8) color.RGBA {
	if v == core.CellBlack {
		return p.On
	}
	return p.Off
}

// Paint asks the painter to draw every cell of grid, then the ant on top.
func Paint(painter core.CellPainter, grid *core.Grid, ant core.Coordinate, palette Palette) {
	for idx, v := range grid.Cells() {
		x, y := grid.XY(idx)
		painter.DrawCell(x, y, palette.cell(v))
	}
	if grid.InBounds(ant.X, ant.Y) {
		painter.DrawCell(ant.X, ant.Y, palette.Ant)
	}
}

// FormatTitle builds the window title shown while the ant walks.
func FormatTitle(title string, steps int) string {
	return fmt.Sprintf("%s | %d steps", title, steps)
}
