package layout

import "github.com/zerocore-ai/rxtui/style"

// ItemKind distinguishes a text leaf (whose size comes from wrapped
// content) from a container (whose size comes from its children).
type ItemKind int

const (
	KindContainer ItemKind = iota
	KindLeaf
)

// Item is the layout engine's own view of a node: the minimal set of
// fields the two-pass solver reads and writes. render.Tree builds an Item
// tree that mirrors its persistent render nodes, calls Solve, then copies
// Rect/ContentSize/ScrollY back — keeping this package free of any
// dependency on the render or vnode packages so it stays unit-testable on
// its own (spec §8 layout determinism/totality properties).
type Item struct {
	Kind ItemKind

	// Leaf-only input.
	Text         string
	TextWrapMode style.TextWrap

	// Container-only input.
	Direction style.Direction
	ChildWrap style.WrapMode
	Gap       int
	Justify   style.JustifyContent
	Align     style.AlignItems
	Children  []*Item

	// Shared sizing/box input.
	Width, Height                  style.Dimension
	MinWidth, MaxWidth              *int
	MinHeight, MaxHeight            *int
	Margin, Padding                 style.Spacing
	Border                          style.Border
	AlignSelf                       style.AlignSelf
	Position                        style.Position
	Top, Right, Bottom, Left        *int
	Overflow                        style.Overflow
	ShowScrollbar                   bool

	// ScrollY is the persisted scroll offset; callers set it before Solve
	// and Solve clamps it in place.
	ScrollY int

	// Outputs, populated by Solve.
	Intrinsic   Size
	Rect        Rect
	ContentBox  Rect
	ContentSize Size
	Scrollable  bool
	MaxScrollY  int
	WrappedText []string
}

func (it *Item) isAbsolute() bool {
	return it.Position == style.PositionAbsolute || it.Position == style.PositionFixed
}

func axisMainCross(dir style.Direction, s Size) (main, cross int) {
	if dir == style.Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func sizeFromAxis(dir style.Direction, main, cross int) Size {
	if dir == style.Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func spacingMainCross(dir style.Direction, sp style.Spacing) (main, cross int) {
	h := sp.Left + sp.Right
	v := sp.Top + sp.Bottom
	if dir == style.Horizontal {
		return h, v
	}
	return v, h
}

func borderSpacing(b style.Border) style.Spacing {
	if !b.Enabled {
		return style.Spacing{}
	}
	var sp style.Spacing
	if b.Edges.Has(style.EdgeTop) {
		sp.Top = 1
	}
	if b.Edges.Has(style.EdgeRight) {
		sp.Right = 1
	}
	if b.Edges.Has(style.EdgeBottom) {
		sp.Bottom = 1
	}
	if b.Edges.Has(style.EdgeLeft) {
		sp.Left = 1
	}
	return sp
}

func insetBySpacing(r Rect, sp style.Spacing) Rect {
	return r.Inset(sp.Top, sp.Right, sp.Bottom, sp.Left)
}

func clampDimension(v int, min, max *int) int {
	if min != nil && v < *min {
		v = *min
	}
	if max != nil && v > *max {
		v = *max
	}
	return v
}
