// langton draws Langton's ant in a window, in the terminal or headless.
//
// Usage:
//
//	langton window   - Open an ebiten window (default)
//	langton tui      - Draw in the terminal with half-block characters
//	langton run      - Run without a display and print the result
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
