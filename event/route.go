// Package event routes terminal input to the render tree: keyboard events
// go first to any node with a global binding for that key (document
// order), falling back to the focused node only when no global binding
// matched; mouse clicks hit-test to the topmost node under the cursor and
// move focus there; wheel scrolling is consumed by the nearest scrollable
// ancestor under the cursor. Grounded on pkg/ui/runtime/screen.go's
// HandleMessage (global-vs-targeted dispatch order) and
// pkg/ui/runtime/hitgrid.go (hit-testing).
package event

import (
	"github.com/zerocore-ai/rxtui/focus"
	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/termevent"
	"github.com/zerocore-ai/rxtui/vnode"
)

// linesPerNotch is how many content rows one wheel click scrolls,
// matching the teacher's scrollback viewport step.
const linesPerNotch = 3

// Dispatcher routes termevent.Event values against one render tree.
type Dispatcher struct {
	Scope *focus.Scope
}

func NewDispatcher(scope *focus.Scope) *Dispatcher {
	return &Dispatcher{Scope: scope}
}

// HandleKey delivers a key event: first to any node in the tree with a
// matching global binding, document order, first match wins; only if no
// global handler matched does it fall back to the focused node's own
// (non-global) handlers and character callback. Reports whether anything
// handled the event.
func (d *Dispatcher) HandleKey(root *render.Node, ev termevent.KeyEvent) bool {
	key := mapKey(ev.Key)

	for _, n := range render.DocumentOrder(root, nil) {
		if n.Kind != render.KindContainer {
			continue
		}
		if dispatchKeyHandlers(n.Events.OnKey, key, true) {
			return true
		}
	}

	if focused := d.Scope.Current(); focused != nil {
		if dispatchKeyHandlers(focused.Events.OnKey, key, false) {
			return true
		}
		if ev.Key == termevent.KeyRune && focused.Events.OnAnyChar != nil {
			focused.Events.OnAnyChar(ev.Rune)
			return true
		}
	}
	return false
}

func dispatchKeyHandlers(handlers []vnode.KeyHandler, key vnode.Key, globalOnly bool) bool {
	if key == vnode.KeyNone {
		return false
	}
	for _, h := range handlers {
		if h.Key == key && h.Global == globalOnly {
			h.Handle()
			return true
		}
	}
	return false
}

// HandleMouse hit-tests (x, y) against root, moves focus to the hit node
// if it is focusable, and invokes its OnClick. Reports whether anything
// was hit.
func (d *Dispatcher) HandleMouse(root *render.Node, x, y int, action termevent.MouseAction, button termevent.MouseButton) bool {
	hit := render.HitTest(root, x, y)
	if hit == nil {
		return false
	}

	if action == termevent.MousePress && button == termevent.MouseLeft {
		if hit.Focusable {
			d.Scope.SetFocus(hit)
		}
		if hit.Events.OnClick != nil {
			hit.Events.OnClick()
		}
	}
	return true
}

// HandleScroll adjusts the scroll offset of the nearest scrollable
// ancestor (inclusive) of the node under (x, y), clamped to its
// MaxScrollY, linesPerNotch rows per notch. Reports whether any
// scrollable ancestor consumed the event.
func (d *Dispatcher) HandleScroll(root *render.Node, x, y int, notches int) bool {
	hit := render.HitTest(root, x, y)
	for n := hit; n != nil; n = n.Parent {
		if !n.Scrollable {
			continue
		}
		n.ScrollY += notches * linesPerNotch
		if n.ScrollY < 0 {
			n.ScrollY = 0
		}
		if n.ScrollY > n.MaxScrollY {
			n.ScrollY = n.MaxScrollY
		}
		n.MarkDirty()
		return true
	}
	return false
}

// HandleMouseEvent dispatches one termevent.MouseEvent to either
// HandleScroll (wheel buttons) or HandleMouse (everything else).
func (d *Dispatcher) HandleMouseEvent(root *render.Node, ev termevent.MouseEvent) bool {
	switch ev.Button {
	case termevent.MouseWheelUp:
		return d.HandleScroll(root, ev.X, ev.Y, -1)
	case termevent.MouseWheelDown:
		return d.HandleScroll(root, ev.X, ev.Y, 1)
	default:
		return d.HandleMouse(root, ev.X, ev.Y, ev.Action, ev.Button)
	}
}

// Dispatch routes any termevent.Event to the appropriate handler.
// ResizeEvent and PasteEvent are reported unhandled here — relayout and
// paste-as-text delivery are the app loop's responsibility, not this
// package's.
func (d *Dispatcher) Dispatch(root *render.Node, ev termevent.Event) bool {
	switch e := ev.(type) {
	case termevent.KeyEvent:
		return d.HandleKey(root, e)
	case termevent.MouseEvent:
		return d.HandleMouseEvent(root, e)
	default:
		return false
	}
}
