// Package cellbuf implements the double-buffered terminal cell grid: the
// current/previous frame buffers, minimal-write diffing, and the ANSI
// writer that turns a diff into terminal output (spec §4.5).
package cellbuf

import "github.com/zerocore-ai/rxtui/backend"

// Cell is a single terminal cell. Width is the display width of Rune (2
// for wide CJK/emoji characters, 0 for the continuation cell that follows
// a wide rune).
type Cell struct {
	Rune  rune
	Width uint8
	Style backend.Style
}

// Empty returns a blank cell with default style.
func Empty() Cell {
	return Cell{Rune: ' ', Width: 1, Style: backend.DefaultStyle()}
}

func (c Cell) Equal(o Cell) bool {
	return c.Rune == o.Rune && c.Width == o.Width && c.Style.Equal(o.Style)
}

// CellUpdate is one emitted write: set cell (x, y) to Cell.
type CellUpdate struct {
	X, Y int
	Cell Cell
}
