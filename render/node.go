// Package render owns the persistent render tree: the positioned, mutable
// mirror of the virtual DOM that survives across frames so vdom.Patch can
// mutate it in place instead of rebuilding it, and that carries the
// resolved layout geometry, scroll state, and focus/dirty bits the event
// and draw pipelines read (spec §4, §5).
package render

import (
	"github.com/zerocore-ai/rxtui/layout"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Kind discriminates the three render node shapes, mirroring vnode.VNode.
type Kind int

const (
	KindContainer Kind = iota
	KindText
	KindRichText
)

// Node is one positioned node in the persistent render tree.
type Node struct {
	Kind Kind

	// Container fields. Base/Focus/Hover are the raw per-state styles from
	// the last UpdateProps patch; Resolve composes them against this
	// node's own live Focused/Hovered bits, which the focus and event
	// packages set directly and which survive re-renders untouched — a
	// patch never overwrites them (mirrors the original's explicit
	// "preserve the existing focus state" comment in vdom.rs).
	Base, Focus, Hover style.Style
	Focusable          bool
	Focused            bool
	Hovered            bool
	ComponentPath      string
	Events             vnode.EventCallbacks

	// Text fields.
	Text      string
	TextStyle style.TextStyle

	// RichText fields.
	Spans []vnode.Span

	Parent   *Node
	Children []*Node

	ZIndex int
	Dirty  bool

	// Populated by Tree.Layout from the matching layout.Item.
	Rect        layout.Rect
	ContentBox  layout.Rect
	ContentSize layout.Size
	ScrollY     int
	MaxScrollY  int
	Scrollable  bool
	WrappedText []string
}

// MarkDirty flags this node and propagates the flag up to the nearest
// scrollable ancestor, so a scrolled region redraws its scrollbar even
// when the change originates from a descendant outside the viewport.
func (n *Node) MarkDirty() {
	n.Dirty = true
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Scrollable {
			p.Dirty = true
			return
		}
	}
}

// Resolve merges Base, then Focus if focused, then Hover if hovered —
// the render-tree-side counterpart of vnode.Container.Resolve, driven by
// this node's own persisted interaction state rather than the vnode's.
func (n *Node) Resolve() style.Style {
	s := n.Base
	if n.Focused {
		s = style.Merge(s, n.Focus)
	}
	if n.Hovered {
		s = style.Merge(s, n.Hover)
	}
	return s
}

// ResolvedZIndex reads the resolved style's explicit z-index, defaulting
// to the node's own ZIndex field (set by layering order) when unset.
func (n *Node) ResolvedZIndex() int {
	resolved := n.Resolve()
	if resolved.ZIndex != nil {
		return *resolved.ZIndex
	}
	return n.ZIndex
}

// DocumentOrder appends n and its descendants, pre-order, to out — the
// traversal focus.Scope uses to build its Tab cycle.
func DocumentOrder(n *Node, out []*Node) []*Node {
	if n == nil {
		return out
	}
	out = append(out, n)
	for _, c := range n.Children {
		out = DocumentOrder(c, out)
	}
	return out
}

// HitTest returns the topmost (highest z-index, then last-drawn) node
// whose box contains (x, y), or nil.
func HitTest(n *Node, x, y int) *Node {
	if n == nil || !n.Rect.Contains(x, y) {
		return nil
	}
	var best *Node
	for _, c := range n.Children {
		if hit := HitTest(c, x, y); hit != nil {
			if best == nil || hit.ResolvedZIndex() >= best.ResolvedZIndex() {
				best = hit
			}
		}
	}
	if best != nil {
		return best
	}
	return n
}
