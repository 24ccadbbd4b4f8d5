package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
	"github.com/mitchelldurbincs/LangtonsAnt/internal/render"
)

// GridRenderer paints the grid into a CPU pixel buffer and uploads it to a
// single ebiten image each frame.
type GridRenderer struct {
	cellSize int
	palette  render.Palette
	pixels   *render.PixelBuffer
	img      *ebiten.Image
}

// NewGridRenderer returns a renderer ready to use.
func NewGridRenderer(cols, rows, cellSize int, palette render.Palette) *GridRenderer {
	pb := render.NewPixelBuffer(cols, rows, cellSize)
	w, h := pb.Size()
	return &GridRenderer{
		cellSize: pb.CellSize(),
		palette:  palette,
		pixels:   pb,
		img:      ebiten.NewImage(w, h),
	}
}

// Draw renders the grid and ant on the supplied Ebiten screen.
func (gr *GridRenderer) Draw(screen *ebiten.Image, grid *core.Grid, ant core.Coordinate) {
	if grid == nil {
		return
	}
	render.Paint(gr.pixels, grid, ant, gr.palette)
	gr.img.WritePixels(gr.pixels.Pix())
	screen.DrawImage(gr.img, nil)
}

// Size returns the rendered size in pixels.
func (gr *GridRenderer) Size() (int, int) {
	return gr.pixels.Size()
}
