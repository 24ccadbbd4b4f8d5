package common

import (
	"fmt"
	"image/color"
)

// Cell colours. A cell is drawn at grey level value*0xFF, so flipped cells
// (value 1) show white and untouched cells (value 0) show black.
var (
	CellOnColor  = CellGrey(1)
	CellOffColor = CellGrey(0)
	AntColor     = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
)

// UI colours
var (
	HUDTextColor       = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	HUDBackgroundColor = color.RGBA{0, 0, 0, 160}
)

// CellGrey returns the grey level for a cell value.
func CellGrey(v uint8) color.RGBA {
	g := v * 0xFF
	return color.RGBA{g, g, g, 0xFF}
}

// RGB converts a config triple to an opaque colour, clamping each channel to
// 0..255.
func RGB(c [3]int) color.RGBA {
	return color.RGBA{clampChannel(c[0]), clampChannel(c[1]), clampChannel(c[2]), 0xFF}
}

// Hex formats a colour as #rrggbb (used for terminal styles).
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}
