// Package tcell provides a backend.Backend implementation on top of tcell.
package tcell

import (
	"strings"

	gdtcell "github.com/gdamore/tcell/v2"
	"github.com/zerocore-ai/rxtui/backend"
	"github.com/zerocore-ai/rxtui/termevent"
)

// Backend implements backend.Backend using gdamore/tcell.
type Backend struct {
	screen gdtcell.Screen

	inPaste     bool
	pasteBuffer strings.Builder
}

// New creates a backend bound to a freshly allocated tcell screen.
func New() (*Backend, error) {
	screen, err := gdtcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen, for tests that supply
// tcell's own SimulationScreen.
func NewWithScreen(screen gdtcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

func (b *Backend) Fini() { b.screen.Fini() }

func (b *Backend) Size() (width, height int) { return b.screen.Size() }

func (b *Backend) SetContent(x, y int, r rune, style backend.Style) {
	b.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (b *Backend) Show()       { b.screen.Show() }
func (b *Backend) Clear()      { b.screen.Clear() }
func (b *Backend) HideCursor() { b.screen.HideCursor() }
func (b *Backend) ShowCursor() {}
func (b *Backend) SetCursorPos(x, y int) { b.screen.ShowCursor(x, y) }
func (b *Backend) Beep()                 { b.screen.Beep() }
func (b *Backend) Sync()                 { b.screen.Sync() }

// PollEvent blocks until an event is available, folding tcell's bracketed
// paste start/end pair into a single termevent.PasteEvent.
func (b *Backend) PollEvent() termevent.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *gdtcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				b.inPaste = false
				text := b.pasteBuffer.String()
				b.pasteBuffer.Reset()
				if text != "" {
					return termevent.PasteEvent{Text: text}
				}
				continue
			}

		case *gdtcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case gdtcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case gdtcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case gdtcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}
		}

		return convertEvent(ev)
	}
}

// PostEvent queues resize and key events on the tcell screen. Key events
// are posted without their Alt/Ctrl/Shift modifiers; other event kinds
// are dropped.
func (b *Backend) PostEvent(ev termevent.Event) error {
	if tev := reverseConvertEvent(ev); tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

func convertStyle(s backend.Style) gdtcell.Style {
	fg, bg, attrs := s.Decompose()
	style := gdtcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertColor(c backend.Color) gdtcell.Color {
	if c == backend.ColorDefault {
		return gdtcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, bl := c.RGB()
		return gdtcell.NewRGBColor(int32(r), int32(g), int32(bl))
	}
	return gdtcell.PaletteColor(int(c))
}

func convertEvent(ev gdtcell.Event) termevent.Event {
	switch e := ev.(type) {
	case *gdtcell.EventKey:
		return termevent.KeyEvent{
			Key:   convertKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   e.Modifiers()&gdtcell.ModAlt != 0,
			Ctrl:  e.Modifiers()&gdtcell.ModCtrl != 0,
			Shift: e.Modifiers()&gdtcell.ModShift != 0,
		}
	case *gdtcell.EventResize:
		w, h := e.Size()
		return termevent.ResizeEvent{Width: w, Height: h}
	case *gdtcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return termevent.MouseEvent{
			X:      x,
			Y:      y,
			Button: convertMouseButton(e.Buttons()),
			Action: convertMouseAction(e.Buttons()),
			Alt:    mods&gdtcell.ModAlt != 0,
			Ctrl:   mods&gdtcell.ModCtrl != 0,
			Shift:  mods&gdtcell.ModShift != 0,
		}
	default:
		return nil
	}
}

func convertKey(k gdtcell.Key) termevent.Key {
	switch k {
	case gdtcell.KeyRune:
		return termevent.KeyRune
	case gdtcell.KeyUp:
		return termevent.KeyUp
	case gdtcell.KeyDown:
		return termevent.KeyDown
	case gdtcell.KeyRight:
		return termevent.KeyRight
	case gdtcell.KeyLeft:
		return termevent.KeyLeft
	case gdtcell.KeyPgUp:
		return termevent.KeyPageUp
	case gdtcell.KeyPgDn:
		return termevent.KeyPageDown
	case gdtcell.KeyHome:
		return termevent.KeyHome
	case gdtcell.KeyEnd:
		return termevent.KeyEnd
	case gdtcell.KeyInsert:
		return termevent.KeyInsert
	case gdtcell.KeyDelete:
		return termevent.KeyDelete
	case gdtcell.KeyBackspace, gdtcell.KeyBackspace2:
		return termevent.KeyBackspace
	case gdtcell.KeyTab:
		return termevent.KeyTab
	case gdtcell.KeyEnter:
		return termevent.KeyEnter
	case gdtcell.KeyEscape:
		return termevent.KeyEscape
	case gdtcell.KeyCtrlC:
		return termevent.KeyCtrlC
	case gdtcell.KeyCtrlD:
		return termevent.KeyCtrlD
	case gdtcell.KeyF1:
		return termevent.KeyF1
	case gdtcell.KeyF2:
		return termevent.KeyF2
	case gdtcell.KeyF3:
		return termevent.KeyF3
	case gdtcell.KeyF4:
		return termevent.KeyF4
	case gdtcell.KeyF5:
		return termevent.KeyF5
	case gdtcell.KeyF6:
		return termevent.KeyF6
	case gdtcell.KeyF7:
		return termevent.KeyF7
	case gdtcell.KeyF8:
		return termevent.KeyF8
	case gdtcell.KeyF9:
		return termevent.KeyF9
	case gdtcell.KeyF10:
		return termevent.KeyF10
	case gdtcell.KeyF11:
		return termevent.KeyF11
	case gdtcell.KeyF12:
		return termevent.KeyF12
	default:
		return termevent.KeyNone
	}
}

func convertMouseButton(buttons gdtcell.ButtonMask) termevent.MouseButton {
	switch {
	case buttons&gdtcell.WheelUp != 0:
		return termevent.MouseWheelUp
	case buttons&gdtcell.WheelDown != 0:
		return termevent.MouseWheelDown
	case buttons&gdtcell.Button1 != 0:
		return termevent.MouseLeft
	case buttons&gdtcell.Button2 != 0:
		return termevent.MouseMiddle
	case buttons&gdtcell.Button3 != 0:
		return termevent.MouseRight
	default:
		return termevent.MouseNone
	}
}

func convertMouseAction(buttons gdtcell.ButtonMask) termevent.MouseAction {
	if buttons == gdtcell.ButtonNone {
		return termevent.MouseRelease
	}
	return termevent.MousePress
}

func reverseConvertEvent(ev termevent.Event) gdtcell.Event {
	switch e := ev.(type) {
	case termevent.ResizeEvent:
		return gdtcell.NewEventResize(e.Width, e.Height)
	case termevent.KeyEvent:
		k := gdtcell.KeyRune
		for name := range gdtcell.KeyNames {
			if e.Key != termevent.KeyRune && convertKey(name) == e.Key {
				k = name
			}
		}
		return gdtcell.NewEventKey(k, e.Rune, gdtcell.ModNone)
	default:
		return nil
	}
}

var _ backend.Backend = (*Backend)(nil)
