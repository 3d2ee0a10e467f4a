package cellbuf

import (
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/zerocore-ai/rxtui/backend"
)

// Style is the cell-level style; aliased here so callers in this package
// don't need to import backend directly for plain drawing calls.
type Style = backend.Style

// Buffer is a double-buffered virtual terminal grid. Draws go to the
// "current" frame; Diff compares it against "previous" and emits the
// minimal set of CellUpdates, and Swap then makes current the new previous.
type Buffer struct {
	mu       sync.RWMutex
	width    int
	height   int
	current  [][]Cell
	previous [][]Cell

	cursorX, cursorY int
	cursorVisible    bool
}

// New allocates a buffer with the given dimensions.
func New(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.current = alloc(width, height)
	b.previous = alloc(width, height)
	return b
}

func alloc(w, h int) [][]Cell {
	buf := make([][]Cell, h)
	for y := range buf {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Empty()
		}
		buf[y] = row
	}
	return buf
}

// Resize changes dimensions, preserving overlapping content in "current"
// and forcing a full repaint by resetting "previous" to zero-value cells.
func (b *Buffer) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if width == b.width && height == b.height {
		return
	}

	newCurrent := alloc(width, height)
	// Zero-value cells never equal a drawn cell, so the next Diff reports
	// every position.
	newPrevious := make([][]Cell, height)
	for y := range newPrevious {
		newPrevious[y] = make([]Cell, width)
	}
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			newCurrent[y][x] = b.current[y][x]
		}
	}
	b.current = newCurrent
	b.previous = newPrevious
	b.width, b.height = width, height
}

func (b *Buffer) Size() (width, height int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width, b.height
}

// Set writes a rune at (x, y), handling wide characters by writing a
// zero-width continuation cell immediately after.
func (b *Buffer) Set(x, y int, r rune, style Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setUnsafe(x, y, r, style)
}

func (b *Buffer) setUnsafe(x, y int, r rune, style Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	b.current[y][x] = Cell{Rune: r, Width: uint8(w), Style: style}
	if w == 2 && x+1 < b.width {
		b.current[y][x+1] = Cell{Rune: 0, Width: 0, Style: style}
	}
}

// SetString writes a string starting at (x, y), clipped to the buffer
// width, and returns the number of columns written.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return 0
	}
	col := x
	for _, r := range s {
		if col >= b.width {
			break
		}
		if col < 0 {
			col += runewidth.RuneWidth(r)
			continue
		}
		b.setUnsafe(col, y, r, style)
		col += runewidth.RuneWidth(r)
	}
	if col < x {
		return 0
	}
	return col - x
}

// FillRect fills a clamped rectangle with a single rune and style.
func (b *Buffer) FillRect(x, y, w, h int, r rune, style Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	startX, startY := max(0, x), max(0, y)
	endX, endY := min(b.width, x+w), min(b.height, y+h)
	for row := startY; row < endY; row++ {
		for col := startX; col < endX; col++ {
			b.setUnsafe(col, row, r, style)
		}
	}
}

func (b *Buffer) SetCursor(x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY, b.cursorVisible = x, y, visible
}

func (b *Buffer) Cursor() (x, y int, visible bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

func (b *Buffer) Get(x, y int) Cell {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty()
	}
	return b.current[y][x]
}

// Clear resets the current frame to empty cells.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := range b.current {
		for x := range b.current[y] {
			b.current[y][x] = Empty()
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
