package layout

import (
	"testing"

	"github.com/zerocore-ai/rxtui/style"
)

func TestEqualSplitAcrossFixedAndAuto(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Horizontal,
		Width:     style.Fixed(20),
		Height:    style.Fixed(1),
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fixed(4), Height: style.Fixed(1)},
			{Kind: KindContainer, Width: style.Auto(), Height: style.Fixed(1)},
			{Kind: KindContainer, Width: style.Auto(), Height: style.Fixed(1)},
		},
	}

	Solve(root, 20, 1, false)

	wantWidths := []int{4, 8, 8}
	wantX := []int{0, 4, 12}
	for i, c := range root.Children {
		if c.Rect.Width != wantWidths[i] {
			t.Errorf("child %d width = %d, want %d", i, c.Rect.Width, wantWidths[i])
		}
		if c.Rect.X != wantX[i] {
			t.Errorf("child %d x = %d, want %d", i, c.Rect.X, wantX[i])
		}
	}
}

func TestAutoRemainderGoesToLeadingChildren(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Horizontal,
		Width:     style.Fixed(10),
		Height:    style.Fixed(1),
		Children: []*Item{
			{Kind: KindContainer, Width: style.Auto(), Height: style.Fixed(1)},
			{Kind: KindContainer, Width: style.Auto(), Height: style.Fixed(1)},
			{Kind: KindContainer, Width: style.Auto(), Height: style.Fixed(1)},
		},
	}

	Solve(root, 10, 1, false)

	// 10 / 3 = 3 remainder 1: the first child gets the extra cell.
	wantWidths := []int{4, 3, 3}
	for i, c := range root.Children {
		if c.Rect.Width != wantWidths[i] {
			t.Errorf("child %d width = %d, want %d", i, c.Rect.Width, wantWidths[i])
		}
	}
}

func TestFractionFloorsAndHasMinimumOfOne(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Horizontal,
		Width:     style.Fixed(10),
		Height:    style.Fixed(1),
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fraction(0.01), Height: style.Fixed(1)},
		},
	}
	Solve(root, 10, 1, false)
	if got := root.Children[0].Rect.Width; got != 1 {
		t.Errorf("fraction width = %d, want 1 (floor with minimum)", got)
	}
}

func TestBoxEnclosure(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Vertical,
		Width:     style.Fixed(30),
		Height:    style.Fixed(10),
		Padding:   style.EvenSpacing(1),
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fixed(5), Height: style.Fixed(3)},
			{Kind: KindContainer, Width: style.Fixed(5), Height: style.Fixed(3)},
		},
	}
	Solve(root, 30, 10, false)

	for i, c := range root.Children {
		if c.Rect.X < root.Rect.X || c.Rect.Y < root.Rect.Y {
			t.Errorf("child %d escapes parent bounds: %+v outside %+v", i, c.Rect, root.Rect)
		}
		if c.Rect.X+c.Rect.Width > root.Rect.X+root.Rect.Width {
			t.Errorf("child %d right edge %d exceeds parent right edge %d", i, c.Rect.X+c.Rect.Width, root.Rect.X+root.Rect.Width)
		}
	}
}

func TestScrollClampsToContentRange(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Vertical,
		Width:     style.Fixed(10),
		Height:    style.Fixed(5),
		Overflow:  style.OverflowScroll,
		ScrollY:   1000,
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fixed(10), Height: style.Fixed(4)},
			{Kind: KindContainer, Width: style.Fixed(10), Height: style.Fixed(4)},
			{Kind: KindContainer, Width: style.Fixed(10), Height: style.Fixed(4)},
		},
	}
	Solve(root, 10, 5, false)

	if !root.Scrollable {
		t.Fatal("expected container to be scrollable: content (12) exceeds visible height (5)")
	}
	if root.MaxScrollY != 7 {
		t.Errorf("MaxScrollY = %d, want 7 (content 12 - visible 5)", root.MaxScrollY)
	}
	if root.ScrollY != root.MaxScrollY {
		t.Errorf("ScrollY = %d, want clamped to MaxScrollY %d", root.ScrollY, root.MaxScrollY)
	}

	root.ScrollY = -5
	computeScroll(root, root.ContentBox)
	if root.ScrollY != 0 {
		t.Errorf("negative ScrollY should clamp to 0, got %d", root.ScrollY)
	}
}

func TestNonScrollableContainerReportsNoMaxScroll(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Vertical,
		Width:     style.Fixed(10),
		Height:    style.Fixed(10),
		Overflow:  style.OverflowVisible,
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fixed(10), Height: style.Fixed(3)},
		},
	}
	Solve(root, 10, 10, false)
	if root.Scrollable {
		t.Error("OverflowVisible container should never report scrollable")
	}
}

func TestScrollbarThumbSizing(t *testing.T) {
	h, off := ScrollbarThumb(10, 20, 0)
	if h != 5 {
		t.Errorf("thumb height = %d, want 5 for half-visible content", h)
	}
	if off != 0 {
		t.Errorf("thumb offset at scrollY=0 = %d, want 0", off)
	}

	_, off = ScrollbarThumb(10, 20, 10)
	if off != 5 {
		t.Errorf("thumb offset at max scroll = %d, want 5", off)
	}
}

func TestTextIntrinsicHeightRecomputedAfterWrap(t *testing.T) {
	leaf := &Item{
		Kind:         KindLeaf,
		Text:         "one two three four",
		TextWrapMode: style.WrapWord,
		Width:        style.Fixed(9),
		Height:       style.Content(),
	}
	Solve(leaf, 80, 24, false)
	if leaf.Rect.Height <= 1 {
		t.Errorf("expected wrapped text to occupy multiple lines, got height %d (lines %v)", leaf.Rect.Height, leaf.WrappedText)
	}
}

func TestJustifyContentSpaceBetween(t *testing.T) {
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Horizontal,
		Width:     style.Fixed(10),
		Height:    style.Fixed(1),
		Justify:   style.JustifySpaceBetween,
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fixed(2), Height: style.Fixed(1)},
			{Kind: KindContainer, Width: style.Fixed(2), Height: style.Fixed(1)},
		},
	}
	Solve(root, 10, 1, false)
	if root.Children[0].Rect.X != 0 {
		t.Errorf("first child x = %d, want 0", root.Children[0].Rect.X)
	}
	if got, want := root.Children[1].Rect.X, 8; got != want {
		t.Errorf("second child x = %d, want %d (pushed to the far edge)", got, want)
	}
}

func TestAbsoluteChildIgnoresFlow(t *testing.T) {
	top, left := 1, 2
	root := &Item{
		Kind:      KindContainer,
		Direction: style.Vertical,
		Width:     style.Fixed(20),
		Height:    style.Fixed(10),
		Children: []*Item{
			{Kind: KindContainer, Width: style.Fixed(5), Height: style.Fixed(5)},
			{
				Kind:     KindContainer,
				Width:    style.Fixed(3),
				Height:   style.Fixed(3),
				Position: style.PositionAbsolute,
				Top:      &top,
				Left:     &left,
			},
		},
	}
	Solve(root, 20, 10, false)

	abs := root.Children[1]
	if abs.Rect.X != root.ContentBox.X+left || abs.Rect.Y != root.ContentBox.Y+top {
		t.Errorf("absolute child positioned at %+v, want origin offset by (top=%d,left=%d)", abs.Rect, top, left)
	}
	// flow sibling's position is unaffected by the absolute sibling.
	if root.Children[0].Rect.Y != root.ContentBox.Y {
		t.Errorf("flow sibling displaced by absolute child: %+v", root.Children[0].Rect)
	}
}
