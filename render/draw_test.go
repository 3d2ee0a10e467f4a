package render

import (
	"testing"

	"github.com/zerocore-ai/rxtui/cellbuf"
	"github.com/zerocore-ai/rxtui/layout"
	"github.com/zerocore-ai/rxtui/style"
)

func fixed(n int) *style.Dimension { d := style.Fixed(n); return &d }

func TestDrawFillsBackgroundWithinBounds(t *testing.T) {
	bg := style.Red
	root := &Node{
		Kind: KindContainer,
		Base: style.Style{Width: fixed(6), Height: fixed(3), Background: &bg},
	}
	tree := NewTree(root)
	tree.Layout(6, 3, false)

	buf := cellbuf.New(10, 10)
	tree.Draw(buf)

	cell := buf.Get(2, 1)
	if cell.Rune != ' ' {
		t.Fatalf("expected background fill cell, got rune %q", cell.Rune)
	}
	if cell.Style.BG() != bg.Cell() {
		t.Errorf("background color = %v, want %v", cell.Style.BG(), bg.Cell())
	}

	outside := buf.Get(8, 8)
	if outside.Style.BG() == bg.Cell() && outside.Rune != ' ' {
		t.Errorf("fill leaked outside the container's bounds")
	}
}

func TestDrawTextWrapsAndClipsToBox(t *testing.T) {
	text := &Node{Kind: KindText, Text: "one two three"}
	root := &Node{
		Kind:     KindContainer,
		Base:     style.Style{Width: fixed(7), Height: fixed(3)},
		Children: []*Node{text},
	}
	text.Parent = root
	tree := NewTree(root)
	tree.Layout(7, 3, false)
	if len(text.WrappedText) < 2 {
		t.Fatalf("expected text to wrap across multiple lines at width 7, got %v", text.WrappedText)
	}

	buf := cellbuf.New(10, 10)
	tree.Draw(buf)
	if buf.Get(0, 0).Rune != 'o' {
		t.Errorf("expected first wrapped line to start with 'o', got %q", buf.Get(0, 0).Rune)
	}
}

func TestBorderDrawnOnAllFourEdges(t *testing.T) {
	root := &Node{
		Kind: KindContainer,
		Base: style.Style{
			Width: fixed(5), Height: fixed(4),
			Border: &style.Border{Enabled: true, Style: style.BorderSingle, Edges: style.EdgesAll},
		},
	}
	tree := NewTree(root)
	tree.Layout(5, 4, false)

	buf := cellbuf.New(10, 10)
	tree.Draw(buf)

	if buf.Get(0, 0).Rune != '┌' {
		t.Errorf("top-left corner = %q, want ┌", buf.Get(0, 0).Rune)
	}
	if buf.Get(4, 3).Rune != '┘' {
		t.Errorf("bottom-right corner = %q, want ┘", buf.Get(4, 3).Rune)
	}
	if buf.Get(2, 0).Rune != '─' {
		t.Errorf("top edge = %q, want ─", buf.Get(2, 0).Rune)
	}
}

func TestHitTestFindsTopmostNodeAtPoint(t *testing.T) {
	child := &Node{Kind: KindContainer, Rect: rect(2, 2, 3, 3), Base: style.Style{ZIndex: intPtr(1)}}
	root := &Node{Kind: KindContainer, Rect: rect(0, 0, 10, 10), Children: []*Node{child}}
	child.Parent = root

	if hit := HitTest(root, 3, 3); hit != child {
		t.Errorf("expected hit test to find the child at (3,3), got %+v", hit)
	}
	if hit := HitTest(root, 0, 0); hit != root {
		t.Errorf("expected hit test to find the root outside the child's bounds")
	}
	if hit := HitTest(root, 100, 100); hit != nil {
		t.Errorf("expected no hit far outside the tree")
	}
}

func rect(x, y, w, h int) layout.Rect {
	return layout.Rect{X: x, Y: y, Width: w, Height: h}
}

func intPtr(v int) *int { return &v }
