// Package vnode defines the tree a view function returns: VNode, the sum
// type Container | Text | RichText | Mount. A tree fresh from a view call
// may still contain Mount nodes marking child components; vdom.Expand
// walks the tree and replaces every Mount with that component's own
// (recursively expanded) view before diff ever sees it, so Diff/Build only
// ever handle the Mount-free case. See spec §3.
package vnode

import "github.com/zerocore-ai/rxtui/style"

// VNode is the sum type Container | Text | RichText | Mount. It is
// implemented by unexported marker methods the way the teacher's
// commands/messages use a closed marker-method set
// (pkg/ui/runtime/commands.go).
type VNode interface {
	vnodeMarker()
}

// Container is a div-like node holding children plus layout/visual/
// interaction/position/event properties.
type Container struct {
	Children []VNode

	// Visual styling for the three interaction states; Resolve() merges
	// them with base → focus → hover precedence (DESIGN.md Open Q3).
	Base  style.Style
	Focus style.Style
	Hover style.Style

	Focusable bool
	Focused   bool
	Hovered   bool

	// ComponentPath ties this container back to the component subtree
	// that produced it, for focus targeting and event delivery.
	ComponentPath string

	Events EventCallbacks
}

func (*Container) vnodeMarker() {}

// NewContainer returns an empty container ready for field assignment.
func NewContainer(children ...VNode) *Container {
	return &Container{Children: children}
}

// Resolve merges Base, then Focus (if focused), then Hover (if hovered).
func (c *Container) Resolve() style.Style {
	s := c.Base
	if c.Focused {
		s = style.Merge(s, c.Focus)
	}
	if c.Hovered {
		s = style.Merge(s, c.Hover)
	}
	return s
}

// Text is a single run of plain text with one style.
type Text struct {
	Content string
	Style   style.TextStyle
}

func (*Text) vnodeMarker() {}

// Span is one styled run within a RichText node.
type Span struct {
	Content string
	Style   style.TextStyle
}

// RichText is a sequence of independently styled spans rendered as one
// logical line (wrapped as a unit by the layout engine).
type RichText struct {
	Spans []Span
	Style style.TextStyle
}

func (*RichText) vnodeMarker() {}

// Mount marks a point in the tree where a child component lives. Component
// is typed interface{} rather than component.Component to avoid an import
// cycle (vnode is imported by component); vdom.Expand's mount callback is
// the one place that type-asserts it back. Its identity is not carried
// here — it is derived from the Mount's position in the tree as Expand
// walks down to it, the way the original assigns ComponentId from
// parent_id.child(child_index) rather than from anything the view author
// supplies.
type Mount struct {
	Component interface{}
}

func (*Mount) vnodeMarker() {}

// KeyHandler pairs a key binding with its callback and whether the
// binding fires regardless of focus ("global").
type KeyHandler struct {
	Key    Key
	Handle func()
	Global bool
}

// Key is a small closed set of bindable keys (mirrors termevent.Key but
// kept separate so vnode does not depend on the terminal package).
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyShiftTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// EventCallbacks is the set of interaction bindings a Container can carry.
type EventCallbacks struct {
	OnClick      func()
	OnKey        []KeyHandler
	OnAnyChar    func(r rune)
	OnFocus      func()
	OnBlur       func()
}
