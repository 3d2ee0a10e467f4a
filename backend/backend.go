// Package backend defines the terminal abstraction the renderer writes
// through and the event loop reads from. Swapping the tcell implementation
// for the sim implementation turns the whole stack into a deterministic,
// headless test harness.
package backend

import "github.com/zerocore-ai/rxtui/termevent"

// Backend is the terminal abstraction layer. Implementations handle raw
// terminal I/O, input decoding, and screen rendering.
type Backend interface {
	// Init enters raw mode / the alternate screen as configured.
	Init() error

	// Fini restores the terminal to its prior state.
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// SetContent sets a cell at (x, y) with the given rune and style.
	SetContent(x, y int, r rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	Show()

	Clear()
	HideCursor()
	ShowCursor()
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available, or returns nil when
	// the backend is shutting down.
	PollEvent() termevent.Event

	// PostEvent injects an event into the poll queue.
	PostEvent(ev termevent.Event) error

	Beep()

	// Sync forces a full redraw on the next Show.
	Sync()
}
