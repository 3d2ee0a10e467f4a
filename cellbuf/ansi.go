package cellbuf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zerocore-ai/rxtui/backend"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiCursorHome  = "\x1b[H"
	ansiCursorHide  = "\x1b[?25l"
	ansiCursorShow  = "\x1b[?25h"
	ansiReset       = "\x1b[0m"
	ansiAltScreen   = "\x1b[?1049h"
	ansiMainScreen  = "\x1b[?1049l"
)

// CursorTo returns the escape sequence that moves the cursor to (x, y),
// converting from 0-indexed cell coordinates to 1-indexed ANSI coordinates.
func CursorTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

func cursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

// StyleToANSI renders a backend.Style as an SGR escape sequence.
func StyleToANSI(s backend.Style) string {
	fg, bg, attrs := s.Decompose()
	parts := []string{"0"}

	if attrs&backend.AttrBold != 0 {
		parts = append(parts, "1")
	}
	if attrs&backend.AttrDim != 0 {
		parts = append(parts, "2")
	}
	if attrs&backend.AttrItalic != 0 {
		parts = append(parts, "3")
	}
	if attrs&backend.AttrUnderline != 0 {
		parts = append(parts, "4")
	}
	if attrs&backend.AttrBlink != 0 {
		parts = append(parts, "5")
	}
	if attrs&backend.AttrReverse != 0 {
		parts = append(parts, "7")
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		parts = append(parts, "9")
	}

	parts = append(parts, colorToANSI(fg, true)...)
	parts = append(parts, colorToANSI(bg, false)...)

	return "\x1b[" + strings.Join(parts, ";") + "m"
}

func colorToANSI(c backend.Color, fg bool) []string {
	if c == backend.ColorDefault {
		if fg {
			return []string{"39"}
		}
		return []string{"49"}
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		if fg {
			return []string{"38", "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
		}
		return []string{"48", "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	}
	idx := int(c)
	if fg {
		if idx < 8 {
			return []string{strconv.Itoa(30 + idx)}
		}
		if idx < 16 {
			return []string{strconv.Itoa(90 + idx - 8)}
		}
		return []string{"38", "5", strconv.Itoa(idx)}
	}
	if idx < 8 {
		return []string{strconv.Itoa(40 + idx)}
	}
	if idx < 16 {
		return []string{strconv.Itoa(100 + idx - 8)}
	}
	return []string{"48", "5", strconv.Itoa(idx)}
}

// ANSIWriter accumulates terminal output while tracking the last cursor
// position and style, so consecutive writes only emit the deltas actually
// needed (spec §4.5: "grouped writes minimizing cursor jumps/style changes").
type ANSIWriter struct {
	buf       strings.Builder
	lastStyle backend.Style
	styleSet  bool
	lastX     int
	lastY     int
	posSet    bool
}

func NewANSIWriter() *ANSIWriter {
	return &ANSIWriter{lastX: -1, lastY: -1}
}

// MoveTo positions the cursor, using a short relative-forward sequence
// when that's cheaper than an absolute jump on the same line.
func (w *ANSIWriter) MoveTo(x, y int) {
	if w.posSet && w.lastY == y && w.lastX == x {
		return
	}
	if w.posSet && w.lastY == y {
		delta := x - w.lastX
		if delta > 0 && delta < 5 {
			w.buf.WriteString(cursorForward(delta))
			w.lastX = x
			return
		}
	}
	w.buf.WriteString(CursorTo(x, y))
	w.lastX, w.lastY, w.posSet = x, y, true
}

func (w *ANSIWriter) SetStyle(s backend.Style) {
	if w.styleSet && w.lastStyle.Equal(s) {
		return
	}
	w.buf.WriteString(StyleToANSI(s))
	w.lastStyle, w.styleSet = s, true
}

func (w *ANSIWriter) WriteRune(r rune) {
	w.buf.WriteRune(r)
	w.lastX++
}

func (w *ANSIWriter) WriteString(s string) {
	w.buf.WriteString(s)
	w.lastX += len([]rune(s))
}

func (w *ANSIWriter) Reset() {
	w.buf.WriteString(ansiReset)
	w.styleSet = false
}

func (w *ANSIWriter) ShowCursor() { w.buf.WriteString(ansiCursorShow) }
func (w *ANSIWriter) HideCursor() { w.buf.WriteString(ansiCursorHide) }

func (w *ANSIWriter) String() string { return w.buf.String() }
func (w *ANSIWriter) Len() int   { return w.buf.Len() }
func (w *ANSIWriter) Grow(n int) { w.buf.Grow(n) }
