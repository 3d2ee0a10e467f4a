// Package sim provides a headless backend for deterministic tests,
// layered on tcell's own SimulationScreen.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"
	"github.com/zerocore-ai/rxtui/backend"
	"github.com/zerocore-ai/rxtui/backend/tcell"
	"github.com/zerocore-ai/rxtui/termevent"
)

// Backend is a backend.Backend implementation backed by an in-process
// simulated screen, with helpers to inject events and capture output.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
	}
}

// Resize changes the simulated terminal size.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetSize(width, height)
}

func (s *Backend) InjectKey(key termevent.Key, r rune) {
	s.PostEvent(termevent.KeyEvent{Key: key, Rune: r})
}

func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(termevent.KeyRune, r)
}

func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

func (s *Backend) InjectResize(width, height int) {
	s.mu.Lock()
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	s.PostEvent(termevent.ResizeEvent{Width: width, Height: height})
}

func (s *Backend) InjectMouse(x, y int, btn termevent.MouseButton, action termevent.MouseAction) {
	s.PostEvent(termevent.MouseEvent{X: x, Y: y, Button: btn, Action: action})
}

// Capture renders the current screen contents as newline-joined rows.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	lines := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, comb, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the rune and style at a single cell.
func (s *Backend) CaptureCell(x, y int) (r rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, _, tcStyle, _ := s.screen.GetContent(x, y)
	return m, convertTcellStyle(tcStyle)
}

// FindText returns the position of the first occurrence of text, or (-1,-1).
func (s *Backend) FindText(text string) (x, y int) {
	lines := strings.Split(s.Capture(), "\n")
	for row, line := range lines {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcellv2.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&tcellv2.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcellv2.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
