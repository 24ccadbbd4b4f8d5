package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/LangtonsAnt/internal/game/core"
)

// GridFromRows builds a grid from rows of '.' (white) and '#' (black).
// All rows must have the same length.
func GridFromRows(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("GridFromRows needs at least one row")
	}
	grid, err := core.NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	for y, row := range rows {
		if len(row) != grid.Width() {
			t.Fatalf("GridFromRows: row %d has length %d, want %d", y, len(row), grid.Width())
		}
		for x, ch := range row {
			if ch == '#' {
				grid.Set(x, y, core.CellBlack)
			}
		}
	}
	return grid
}

// CreateTestGrid creates an all-white grid with the given dimensions
func CreateTestGrid(t *testing.T, width, height int) *core.Grid {
	t.Helper()
	grid, err := core.NewGrid(width, height)
	if err != nil {
		t.Fatalf("CreateTestGrid: %v", err)
	}
	return grid
}
