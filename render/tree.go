package render

import (
	"github.com/zerocore-ai/rxtui/layout"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Tree owns a render tree's root and the viewport it's laid out against.
type Tree struct {
	Root           *Node
	Width, Height  int
}

// NewTree wraps root (which may be nil until the first expand/patch).
func NewTree(root *Node) *Tree {
	return &Tree{Root: root}
}

// Layout resolves every node's Rect, ContentBox, and scroll state against
// the given viewport by building a layout.Item mirror of the render tree,
// running the two-pass solver (layout.Solve), and copying the results
// back. unclamped is passed straight through to the solver for inline
// mode's natural-height measurement (spec §6).
func (t *Tree) Layout(width, height int, unclamped bool) {
	t.Width, t.Height = width, height
	if t.Root == nil {
		return
	}
	item := toItem(t.Root)
	layout.Solve(item, width, height, unclamped)
	fromItem(t.Root, item)
}

func toItem(n *Node) *layout.Item {
	switch n.Kind {
	case KindText:
		return &layout.Item{
			Kind:         layout.KindLeaf,
			Text:         n.Text,
			TextWrapMode: derefTextWrap(n.TextStyle.Wrap),
			Width:        style.Content(),
			Height:       style.Content(),
		}
	case KindRichText:
		return &layout.Item{
			Kind:         layout.KindLeaf,
			Text:         joinSpans(n.Spans),
			TextWrapMode: derefTextWrap(n.TextStyle.Wrap),
			Width:        style.Content(),
			Height:       style.Content(),
		}
	}

	resolved := n.Resolve()
	it := &layout.Item{
		Kind:          layout.KindContainer,
		Margin:        deref(resolved.Margin),
		Padding:       deref(resolved.Padding),
		Position:      derefPos(resolved.Position),
		AlignSelf:     derefAlignSelf(resolved.AlignSelf),
		Overflow:      derefOverflow(resolved.Overflow),
		ShowScrollbar: resolved.ShowScroll != nil && *resolved.ShowScroll,
		ScrollY:       n.ScrollY,
		MinWidth:      resolved.MinWidth,
		MaxWidth:      resolved.MaxWidth,
		MinHeight:     resolved.MinHeight,
		MaxHeight:     resolved.MaxHeight,
		Top:           resolved.Top,
		Right:         resolved.Right,
		Bottom:        resolved.Bottom,
		Left:          resolved.Left,
		Direction:     derefDirection(resolved.Direction),
		ChildWrap:     derefWrap(resolved.Wrap),
		Gap:           derefInt(resolved.Gap, 0),
		Justify:       derefJustify(resolved.JustifyContent),
		Align:         derefAlign(resolved.AlignItems),
		Width:         derefDim(resolved.Width, style.Auto()),
		Height:        derefDim(resolved.Height, style.Auto()),
	}
	if resolved.Border != nil {
		it.Border = *resolved.Border
	}
	for _, c := range n.Children {
		it.Children = append(it.Children, toItem(c))
	}
	return it
}

func fromItem(n *Node, it *layout.Item) {
	n.Rect = it.Rect
	n.ContentBox = it.ContentBox
	n.ContentSize = it.ContentSize
	n.ScrollY = it.ScrollY
	n.MaxScrollY = it.MaxScrollY
	n.Scrollable = it.Scrollable
	n.WrappedText = it.WrappedText
	for i, c := range n.Children {
		if i < len(it.Children) {
			fromItem(c, it.Children[i])
		}
	}
}

func joinSpans(spans []vnode.Span) string {
	s := ""
	for _, sp := range spans {
		s += sp.Content
	}
	return s
}

func deref(s *style.Spacing) style.Spacing {
	if s == nil {
		return style.Spacing{}
	}
	return *s
}

func derefDim(d *style.Dimension, fallback style.Dimension) style.Dimension {
	if d == nil {
		return fallback
	}
	return *d
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func derefDirection(d *style.Direction) style.Direction {
	if d == nil {
		return style.Vertical
	}
	return *d
}

func derefWrap(w *style.WrapMode) style.WrapMode {
	if w == nil {
		return style.NoWrap
	}
	return *w
}

func derefTextWrap(w *style.TextWrap) style.TextWrap {
	if w == nil {
		return style.WrapWord
	}
	return *w
}

func derefOverflow(o *style.Overflow) style.Overflow {
	if o == nil {
		return style.OverflowVisible
	}
	return *o
}

func derefPos(p *style.Position) style.Position {
	if p == nil {
		return style.PositionRelative
	}
	return *p
}

func derefAlignSelf(a *style.AlignSelf) style.AlignSelf {
	if a == nil {
		return style.AlignSelfAuto
	}
	return *a
}

func derefJustify(j *style.JustifyContent) style.JustifyContent {
	if j == nil {
		return style.JustifyStart
	}
	return *j
}

func derefAlign(a *style.AlignItems) style.AlignItems {
	if a == nil {
		return style.AlignStart
	}
	return *a
}
