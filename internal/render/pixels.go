package render

import (
	"image"
	"image/color"
)

// PixelBuffer is a CellPainter over an RGBA pixel buffer where each grid cell
// covers a cellSize x cellSize square.
type PixelBuffer struct {
	cols, rows int
	cellSize   int
	img        *image.RGBA
}

// NewPixelBuffer allocates a buffer for a cols x rows grid. A non-positive
// cellSize is treated as 1.
func NewPixelBuffer(cols, rows, cellSize int) *PixelBuffer {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &PixelBuffer{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		img:      image.NewRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize)),
	}
}

// DrawCell fills the square for cell (x, y). Cells outside the grid are ignored.
func (pb *PixelBuffer) DrawCell(x, y int, c color.Color) {
	if x < 0 || x >= pb.cols || y < 0 || y >= pb.rows {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)

	px0, py0 := x*pb.cellSize, y*pb.cellSize
	for py := py0; py < py0+pb.cellSize; py++ {
		row := pb.img.Pix[pb.img.PixOffset(px0, py):]
		for i := 0; i < pb.cellSize; i++ {
			row[4*i+0] = rgba.R
			row[4*i+1] = rgba.G
			row[4*i+2] = rgba.B
			row[4*i+3] = rgba.A
		}
	}
}

// Pix exposes the RGBA bytes in the layout ebiten's WritePixels expects.
func (pb *PixelBuffer) Pix() []byte { return pb.img.Pix }

// Image exposes the buffer as a standard image.
func (pb *PixelBuffer) Image() *image.RGBA { return pb.img }

// Size returns the buffer size in pixels.
func (pb *PixelBuffer) Size() (int, int) {
	return pb.cols * pb.cellSize, pb.rows * pb.cellSize
}

func (pb *PixelBuffer) CellSize() int { return pb.cellSize }
