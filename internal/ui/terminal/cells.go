package terminal

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/common"
)

const halfBlock = "▀"

// CellBuffer collects painted cells so two grid rows can share one terminal
// row: the upper cell is the glyph's foreground, the lower its background.
type CellBuffer struct {
	w, h   int
	fill   color.RGBA
	cells  []color.RGBA
	styles map[[2]color.RGBA]lipgloss.Style
}

// NewCellBuffer creates a buffer for a w×h grid; fill pads the missing
// lower half when h is odd.
func NewCellBuffer(w, h int, fill color.RGBA) *CellBuffer {
	b := &CellBuffer{
		w:      w,
		h:      h,
		fill:   fill,
		cells:  make([]color.RGBA, w*h),
		styles: make(map[[2]color.RGBA]lipgloss.Style),
	}
	for i := range b.cells {
		b.cells[i] = fill
	}
	return b
}

func (b *CellBuffer) DrawCell(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = color.RGBAModel.Convert(c).(color.RGBA)
}

func (b *CellBuffer) at(x, y int) color.RGBA {
	if y >= b.h {
		return b.fill
	}
	return b.cells[y*b.w+x]
}

func (b *CellBuffer) style(top, bottom color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{top, bottom}
	if s, ok := b.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(common.Hex(top))).
		Background(lipgloss.Color(common.Hex(bottom)))
	b.styles[key] = s
	return s
}

// Rows returns the number of terminal rows Render produces.
func (b *CellBuffer) Rows() int {
	return (b.h + 1) / 2
}

// Render converts the buffer to styled text, grouping adjacent cells with the
// same colour pair to keep escape sequences down.
func (b *CellBuffer) Render() string {
	var sb strings.Builder
	sb.Grow(b.w*b.Rows()*4 + b.Rows())

	for row := 0; row < b.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		y := row * 2
		x := 0
		for x < b.w {
			top, bottom := b.at(x, y), b.at(x, y+1)
			n := 0
			for x < b.w && b.at(x, y) == top && b.at(x, y+1) == bottom {
				n++
				x++
			}
			sb.WriteString(b.style(top, bottom).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}
