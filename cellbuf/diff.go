package cellbuf

// Diff computes the minimal set of cell updates needed to turn "previous"
// into "current", skipping wide-character continuation cells and any cell
// unchanged since the last frame (spec §4.5, §8 "buffer correctness").
// Diff does not mutate the buffer; callers follow it with Swap.
func (b *Buffer) Diff() []CellUpdate {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var updates []CellUpdate
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			curr := b.current[y][x]
			prev := b.previous[y][x]
			if curr.Width == 0 {
				continue
			}
			if curr.Equal(prev) {
				continue
			}
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: curr})
		}
	}
	return updates
}

// Swap makes "current" the new "previous" and clears "current" to blank
// cells so the next frame starts from an empty canvas.
func (b *Buffer) Swap() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.previous, b.current = b.current, b.previous
	for y := range b.current {
		for x := range b.current[y] {
			b.current[y][x] = Empty()
		}
	}
}

// DiffStats summarizes a Diff for diagnostics/tests.
type DiffStats struct {
	TotalCells   int
	ChangedCells int
}

// ComputeDiffStats reports the size of the diff without consuming it.
func (b *Buffer) ComputeDiffStats() DiffStats {
	updates := b.Diff()
	return DiffStats{TotalCells: b.width * b.height, ChangedCells: len(updates)}
}

// RenderANSI renders the diff between current and previous frames as a
// single ANSI byte stream, ordering writes top-to-bottom/left-to-right so
// cursor movement stays mostly sequential, and swaps buffers before
// returning. full forces every cell to be treated as changed.
func (b *Buffer) RenderANSI(full bool) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := NewANSIWriter()
	w.Grow(b.width * b.height / 4)
	w.HideCursor()

	if full {
		w.writeEscape(ansiClearScreen)
		w.writeEscape(ansiCursorHome)
	}

	lastX, lastY := -1, -1
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			curr := b.current[y][x]
			if curr.Width == 0 {
				continue
			}
			if !full {
				prev := b.previous[y][x]
				if curr.Equal(prev) {
					continue
				}
			}

			if y != lastY || x != lastX+1 {
				w.MoveTo(x, y)
			}
			w.SetStyle(curr.Style)

			r := curr.Rune
			if r == 0 {
				r = ' '
			}
			w.WriteRune(r)

			lastX = x + int(curr.Width) - 1
			lastY = y
		}
	}

	w.Reset()
	if b.cursorVisible {
		w.writeEscape(CursorTo(b.cursorX, b.cursorY))
		w.ShowCursor()
	}

	b.previous, b.current = b.current, b.previous
	for y := range b.current {
		for x := range b.current[y] {
			b.current[y][x] = Empty()
		}
	}

	return w.String()
}

func (w *ANSIWriter) writeEscape(s string) { w.buf.WriteString(s) }
