package event

import (
	"testing"

	"github.com/zerocore-ai/rxtui/focus"
	"github.com/zerocore-ai/rxtui/layout"
	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/termevent"
	"github.com/zerocore-ai/rxtui/vnode"
)

func box(x, y, w, h int) layout.Rect {
	return layout.Rect{X: x, Y: y, Width: w, Height: h}
}

func TestHandleKeyGlobalFiresBeforeFocused(t *testing.T) {
	var focusedFired, globalFired bool
	focused := &render.Node{
		Kind: render.KindContainer, Focusable: true,
		Events: vnode.EventCallbacks{OnKey: []vnode.KeyHandler{
			{Key: vnode.KeyEnter, Handle: func() { focusedFired = true }},
		}},
	}
	globalNode := &render.Node{
		Kind: render.KindContainer,
		Events: vnode.EventCallbacks{OnKey: []vnode.KeyHandler{
			{Key: vnode.KeyEnter, Global: true, Handle: func() { globalFired = true }},
		}},
	}
	root := &render.Node{Kind: render.KindContainer, Children: []*render.Node{focused, globalNode}}
	focused.Parent, globalNode.Parent = root, root

	scope := focus.NewScope()
	scope.Sync(root)
	scope.FocusFirst()

	d := NewDispatcher(scope)
	handled := d.HandleKey(root, termevent.KeyEvent{Key: termevent.KeyEnter})
	if !handled || !globalFired || focusedFired {
		t.Fatalf("expected only the global handler to fire: handled=%v focused=%v global=%v", handled, focusedFired, globalFired)
	}
}

func TestHandleKeyFallsBackToFocusedWithNoGlobalMatch(t *testing.T) {
	var focusedFired bool
	focused := &render.Node{
		Kind: render.KindContainer, Focusable: true,
		Events: vnode.EventCallbacks{OnKey: []vnode.KeyHandler{
			{Key: vnode.KeyEscape, Handle: func() { focusedFired = true }},
		}},
	}
	globalNode := &render.Node{
		Kind: render.KindContainer,
		Events: vnode.EventCallbacks{OnKey: []vnode.KeyHandler{
			{Key: vnode.KeyEnter, Global: true, Handle: func() {}},
		}},
	}
	root := &render.Node{Kind: render.KindContainer, Children: []*render.Node{focused, globalNode}}
	focused.Parent, globalNode.Parent = root, root

	scope := focus.NewScope()
	scope.Sync(root)
	scope.FocusFirst()

	d := NewDispatcher(scope)
	if !d.HandleKey(root, termevent.KeyEvent{Key: termevent.KeyEscape}) || !focusedFired {
		t.Fatal("expected the focused node's handler to fire when no global binding matches the key")
	}
}

func TestHandleKeyRouteesAnyCharToFocused(t *testing.T) {
	var got rune
	focused := &render.Node{
		Kind: render.KindContainer, Focusable: true,
		Events: vnode.EventCallbacks{OnAnyChar: func(r rune) { got = r }},
	}
	root := &render.Node{Kind: render.KindContainer, Children: []*render.Node{focused}}
	focused.Parent = root

	scope := focus.NewScope()
	scope.Sync(root)
	scope.FocusFirst()

	d := NewDispatcher(scope)
	d.HandleKey(root, termevent.KeyEvent{Key: termevent.KeyRune, Rune: 'x'})
	if got != 'x' {
		t.Fatalf("expected OnAnyChar to receive 'x', got %q", got)
	}
}

func TestHandleMouseClickFocusesAndFires(t *testing.T) {
	var clicked bool
	n := &render.Node{
		Kind: render.KindContainer, Focusable: true, Rect: box(0, 0, 10, 10),
		Events: vnode.EventCallbacks{OnClick: func() { clicked = true }},
	}
	root := &render.Node{Kind: render.KindContainer, Rect: box(0, 0, 10, 10), Children: []*render.Node{n}}
	n.Parent = root

	scope := focus.NewScope()
	scope.Sync(root)

	d := NewDispatcher(scope)
	if !d.HandleMouse(root, 3, 3, termevent.MousePress, termevent.MouseLeft) {
		t.Fatal("expected the click to hit the node")
	}
	if !clicked {
		t.Fatal("expected OnClick to fire")
	}
	if scope.Current() != n {
		t.Fatal("expected the click to focus the hit node")
	}
}

func TestHandleScrollClampsToMaxScrollY(t *testing.T) {
	scrollable := &render.Node{
		Kind: render.KindContainer, Rect: box(0, 0, 10, 10),
		Scrollable: true, MaxScrollY: 5,
	}
	root := scrollable

	scope := focus.NewScope()
	d := NewDispatcher(scope)

	d.HandleScroll(root, 1, 1, 1)
	if scrollable.ScrollY != linesPerNotch {
		t.Fatalf("expected ScrollY = %d, got %d", linesPerNotch, scrollable.ScrollY)
	}

	d.HandleScroll(root, 1, 1, 1)
	if scrollable.ScrollY != 5 {
		t.Fatalf("expected ScrollY clamped to MaxScrollY=5, got %d", scrollable.ScrollY)
	}

	d.HandleScroll(root, 1, 1, -10)
	if scrollable.ScrollY != 0 {
		t.Fatalf("expected ScrollY clamped to 0, got %d", scrollable.ScrollY)
	}
}

func TestHandleScrollBubblesToNearestScrollableAncestor(t *testing.T) {
	child := &render.Node{Kind: render.KindContainer, Rect: box(0, 0, 10, 10)}
	scrollable := &render.Node{
		Kind: render.KindContainer, Rect: box(0, 0, 10, 10),
		Scrollable: true, MaxScrollY: 20, Children: []*render.Node{child},
	}
	child.Parent = scrollable

	scope := focus.NewScope()
	d := NewDispatcher(scope)
	if !d.HandleScroll(scrollable, 1, 1, 1) {
		t.Fatal("expected scroll to bubble up to the scrollable ancestor")
	}
	if scrollable.ScrollY != linesPerNotch {
		t.Fatalf("expected ancestor ScrollY = %d, got %d", linesPerNotch, scrollable.ScrollY)
	}
}

func TestDispatchMouseWheelEvent(t *testing.T) {
	scrollable := &render.Node{
		Kind: render.KindContainer, Rect: box(0, 0, 10, 10),
		Scrollable: true, MaxScrollY: 20,
	}
	scope := focus.NewScope()
	d := NewDispatcher(scope)

	d.Dispatch(scrollable, termevent.MouseEvent{X: 1, Y: 1, Button: termevent.MouseWheelDown})
	if scrollable.ScrollY != linesPerNotch {
		t.Fatalf("expected wheel-down to scroll by %d, got %d", linesPerNotch, scrollable.ScrollY)
	}
}
