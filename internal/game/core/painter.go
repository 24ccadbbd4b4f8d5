package core

import "image/color"

// CellPainter is the rendering collaborator: it fills one grid cell with a
// colour. Drivers implement it over whatever surface they own.
type CellPainter interface {
	DrawCell(x, y int, c color.Color)
}

// QuitSource is polled once per frame by a driver to learn whether the user
// asked to stop.
type QuitSource interface {
	QuitRequested() bool
}
