package core

import "hash/fnv"

// Cell values stored in a Grid.
const (
	CellWhite uint8 = 0
	CellBlack uint8 = 1
)

// Grid is a fixed-size field of binary cells stored row-major (idx = y*W + x).
// Dimensions never change after construction.
type Grid struct {
	W, H  int
	cells []uint8
}

// NewGrid allocates a grid with every cell white.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, WrapDimensionError(w, h, ErrInvalidDimensions)
	}
	return &Grid{W: w, H: h, cells: make([]uint8, w*h)}, nil
}

// MustNewGrid is NewGrid for callers whose dimensions were already validated.
func MustNewGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int            { return g.W }
func (g *Grid) Height() int           { return g.H }
func (g *Grid) Idx(x, y int) int      { return y*g.W + x }
func (g *Grid) XY(idx int) (int, int) { return idx % g.W, idx / g.W }
func (g *Grid) Cells() []uint8        { return g.cells }
func (g *Grid) Get(x, y int) uint8    { return g.cells[g.Idx(x, y)] }

// Set stores v at (x, y). Any non-zero value is stored as CellBlack.
// Coordinates are not checked; use Put when they come from outside.
func (g *Grid) Set(x, y int, v uint8) {
	if v != CellWhite {
		v = CellBlack
	}
	g.cells[g.Idx(x, y)] = v
}

// Toggle flips the cell at (x, y) and returns the value it held before.
func (g *Grid) Toggle(x, y int) uint8 {
	idx := g.Idx(x, y)
	prev := g.cells[idx]
	g.cells[idx] = prev ^ 1
	return prev
}

// InBounds checks if coordinates are within grid boundaries
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// OnRing reports whether (x, y) lies on the outermost row or column.
func (g *Grid) OnRing(x, y int) bool {
	return x == 0 || x == g.W-1 || y == 0 || y == g.H-1
}

// At is the bounds-checked form of Get.
func (g *Grid) At(x, y int) (uint8, error) {
	if !g.InBounds(x, y) {
		return 0, WrapCellError(x, y, ErrOutOfBounds)
	}
	return g.Get(x, y), nil
}

// Put is the bounds-checked form of Set.
func (g *Grid) Put(x, y int, v uint8) error {
	if !g.InBounds(x, y) {
		return WrapCellError(x, y, ErrOutOfBounds)
	}
	g.Set(x, y, v)
	return nil
}

// Clear resets every cell to white.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellWhite
	}
}

// CountBlack returns the number of flipped cells.
func (g *Grid) CountBlack() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Checksum is an FNV-1a hash over the cell buffer, used to compare grid
// states cheaply.
func (g *Grid) Checksum() uint64 {
	h := fnv.New64a()
	h.Write(g.cells)
	return h.Sum64()
}

// String renders the grid as rows of '.' and '#'.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.W+1)*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) == CellBlack {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
