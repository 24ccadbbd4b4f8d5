package testutil

import (
	"image/color"
	"testing"

	"github.com/rs/zerolog"
)

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// DrawCall is one recorded DrawCell invocation
type DrawCall struct {
	X, Y int
	C    color.Color
}

// RecordingPainter records every DrawCell call in order
type RecordingPainter struct {
	Calls []DrawCall
}

func (rp *RecordingPainter) DrawCell(x, y int, c color.Color) {
	rp.Calls = append(rp.Calls, DrawCall{X: x, Y: y, C: c})
}

// At returns the colour of the last call for (x,y), or nil.
func (rp *RecordingPainter) At(x, y int) color.Color {
	for i := len(rp.Calls) - 1; i >= 0; i-- {
		if rp.Calls[i].X == x && rp.Calls[i].Y == y {
			return rp.Calls[i].C
		}
	}
	return nil
}

// QuitFlag is a settable QuitSource
type QuitFlag bool

func (q *QuitFlag) QuitRequested() bool { return bool(*q) }
