package vdom

import (
	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Diff compares the persistent render subtree old against the freshly
// expanded vnode new and returns the patches needed to bring old in line.
// Child matching is purely positional — no key-based reconciliation — per
// spec.md's own recommendation and confirmed against the original's
// diff(), which pairs children by index alone (DESIGN.md Open Question 1).
func Diff(old *render.Node, new vnode.VNode) []Patch {
	switch n := new.(type) {
	case *vnode.Text:
		return diffText(old, n)
	case *vnode.RichText:
		return diffRichText(old, n)
	case *vnode.Container:
		return diffContainer(old, n)
	default:
		return nil
	}
}

func diffText(old *render.Node, n *vnode.Text) []Patch {
	if old.Kind != render.KindText {
		return []Patch{Replace{Old: old, New: n}}
	}
	if old.Text == n.Content && sameTextStyle(old.TextStyle, n.Style) {
		return nil
	}
	return []Patch{UpdateText{Node: old, NewText: n.Content, NewStyle: n.Style}}
}

func diffRichText(old *render.Node, n *vnode.RichText) []Patch {
	if old.Kind != render.KindRichText {
		return []Patch{Replace{Old: old, New: n}}
	}
	if sameSpans(old.Spans, n.Spans) && sameTextStyle(old.TextStyle, n.Style) {
		return nil
	}
	return []Patch{UpdateRichText{Node: old, NewSpans: n.Spans, NewStyle: n.Style}}
}

func diffContainer(old *render.Node, n *vnode.Container) []Patch {
	if old.Kind != render.KindContainer {
		return []Patch{Replace{Old: old, New: n}}
	}

	// Event handler closures are rebuilt fresh on every render, so they
	// can never compare equal to the old ones even when nothing visible
	// changed. Refresh them directly rather than routing through a patch,
	// so diff minimality/idempotence (spec §8) is judged on visible state
	// only (DESIGN.md Open Question 4).
	old.Events = n.Events
	old.Focusable = n.Focusable
	old.ComponentPath = n.ComponentPath

	var patches []Patch
	if !styleEqual(old.Base, n.Base) || !styleEqual(old.Focus, n.Focus) || !styleEqual(old.Hover, n.Hover) {
		patches = append(patches, UpdateProps{Node: old, Base: n.Base, Focus: n.Focus, Hover: n.Hover})
	}

	oldChildren := old.Children
	newChildren := n.Children
	common := len(oldChildren)
	if len(newChildren) < common {
		common = len(newChildren)
	}
	for i := 0; i < common; i++ {
		patches = append(patches, Diff(oldChildren[i], newChildren[i])...)
	}
	for i := common; i < len(newChildren); i++ {
		patches = append(patches, AddChild{Parent: old, Child: newChildren[i], Index: i})
	}
	for i := len(oldChildren) - 1; i >= len(newChildren); i-- {
		patches = append(patches, RemoveChild{Parent: old, Index: i})
	}
	return patches
}

func sameTextStyle(a, b style.TextStyle) bool {
	return ptrEq(a.Color, b.Color) && ptrEq(a.Background, b.Background) &&
		boolPtrEq(a.Bold, b.Bold) && boolPtrEq(a.Italic, b.Italic) &&
		boolPtrEq(a.Underline, b.Underline) && boolPtrEq(a.Strikethrough, b.Strikethrough) &&
		wrapPtrEq(a.Wrap, b.Wrap) && alignPtrEq(a.Align, b.Align)
}

func sameSpans(a, b []vnode.Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Content != b[i].Content || !sameTextStyle(a[i].Style, b[i].Style) {
			return false
		}
	}
	return true
}

func ptrEq(a, b *style.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func boolPtrEq(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func wrapPtrEq(a, b *style.TextWrap) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func alignPtrEq(a, b *style.TextAlign) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// styleEqual compares every field of two container styles by value,
// dereferencing pointers. Two nil pointers, or two pointers to equal
// values, both count as equal — only an actual value change should cost
// a patch.
func styleEqual(a, b style.Style) bool {
	return ptrEq(a.Background, b.Background) &&
		directionPtrEq(a.Direction, b.Direction) &&
		spacingPtrEq(a.Padding, b.Padding) &&
		spacingPtrEq(a.Margin, b.Margin) &&
		overflowPtrEq(a.Overflow, b.Overflow) &&
		dimPtrEq(a.Width, b.Width) &&
		dimPtrEq(a.Height, b.Height) &&
		intPtrEq(a.MinWidth, b.MinWidth) &&
		intPtrEq(a.MinHeight, b.MinHeight) &&
		intPtrEq(a.MaxWidth, b.MaxWidth) &&
		intPtrEq(a.MaxHeight, b.MaxHeight) &&
		borderPtrEq(a.Border, b.Border) &&
		positionPtrEq(a.Position, b.Position) &&
		intPtrEq(a.ZIndex, b.ZIndex) &&
		intPtrEq(a.Top, b.Top) &&
		intPtrEq(a.Right, b.Right) &&
		intPtrEq(a.Bottom, b.Bottom) &&
		intPtrEq(a.Left, b.Left) &&
		wrapModePtrEq(a.Wrap, b.Wrap) &&
		intPtrEq(a.Gap, b.Gap) &&
		boolPtrEq(a.ShowScroll, b.ShowScroll) &&
		justifyPtrEq(a.JustifyContent, b.JustifyContent) &&
		alignItemsPtrEq(a.AlignItems, b.AlignItems) &&
		alignSelfPtrEq(a.AlignSelf, b.AlignSelf)
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func directionPtrEq(a, b *style.Direction) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func spacingPtrEq(a, b *style.Spacing) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func overflowPtrEq(a, b *style.Overflow) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func dimPtrEq(a, b *style.Dimension) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func borderPtrEq(a, b *style.Border) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func positionPtrEq(a, b *style.Position) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func wrapModePtrEq(a, b *style.WrapMode) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func justifyPtrEq(a, b *style.JustifyContent) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func alignItemsPtrEq(a, b *style.AlignItems) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func alignSelfPtrEq(a, b *style.AlignSelf) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
