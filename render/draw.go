package render

import (
	"sort"

	"github.com/zerocore-ai/rxtui/backend"
	"github.com/zerocore-ai/rxtui/cellbuf"
	"github.com/zerocore-ai/rxtui/layout"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Draw walks the tree and paints every visible node into buf: background,
// border, padding (implicit via the content box layout already computed),
// text/richtext content, children in z-index order, then any scrollbar
// overlay — spec §4.4.
func (t *Tree) Draw(buf *cellbuf.Buffer) {
	if t.Root == nil {
		return
	}
	full := layout.Rect{X: 0, Y: 0, Width: t.Width, Height: t.Height}
	drawNode(buf, t.Root, full, 0)
}

func drawNode(buf *cellbuf.Buffer, n *Node, clip layout.Rect, scrollOffset int) {
	screen := n.Rect
	screen.Y -= scrollOffset
	visible := intersect(clip, screen)
	if visible.Width <= 0 || visible.Height <= 0 {
		return
	}

	switch n.Kind {
	case KindText:
		drawText(buf, n, screen, visible)
		return
	case KindRichText:
		drawRichText(buf, n, screen, visible)
		return
	}

	resolved := n.Resolve()
	if resolved.Background != nil {
		fillBackground(buf, visible, *resolved.Background)
	}
	if resolved.Border != nil && resolved.Border.Enabled {
		drawBorder(buf, screen, visible, *resolved.Border)
	}

	childClip := clip
	ov := style.OverflowVisible
	if resolved.Overflow != nil {
		ov = *resolved.Overflow
	}
	if ov != style.OverflowVisible {
		childClip = intersect(clip, contentScreenRect(n, scrollOffset))
	}

	childOffset := scrollOffset
	if n.Scrollable {
		childOffset += n.ScrollY
	}

	children := append([]*Node(nil), n.Children...)
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].ResolvedZIndex() < children[j].ResolvedZIndex()
	})
	for _, c := range children {
		drawNode(buf, c, childClip, childOffset)
	}

	if n.Scrollable && resolved.ShowScroll != nil && *resolved.ShowScroll {
		drawScrollbar(buf, n, screen, visible)
	}
}

func contentScreenRect(n *Node, scrollOffset int) layout.Rect {
	r := n.ContentBox
	r.Y -= scrollOffset
	return r
}

func intersect(a, b layout.Rect) layout.Rect {
	x1 := maxInt(a.X, b.X)
	y1 := maxInt(a.Y, b.Y)
	x2 := minInt(a.X+a.Width, b.X+b.Width)
	y2 := minInt(a.Y+a.Height, b.Y+b.Height)
	if x2 <= x1 || y2 <= y1 {
		return layout.Rect{}
	}
	return layout.Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func fillBackground(buf *cellbuf.Buffer, r layout.Rect, bg style.Color) {
	s := style.BackgroundCell(&bg)
	buf.FillRect(r.X, r.Y, r.Width, r.Height, ' ', s)
}

func drawBorder(buf *cellbuf.Buffer, outer, clip layout.Rect, b style.Border) {
	chars := b.Chars()
	s := backend.DefaultStyle().Foreground(b.Color.Cell())
	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			buf.Set(x, y, r, s)
		}
	}
	x0, y0 := outer.X, outer.Y
	x1, y1 := outer.X+outer.Width-1, outer.Y+outer.Height-1
	if b.Edges.Has(style.EdgeTop) {
		for x := x0; x <= x1; x++ {
			set(x, y0, chars.Horizontal)
		}
	}
	if b.Edges.Has(style.EdgeBottom) {
		for x := x0; x <= x1; x++ {
			set(x, y1, chars.Horizontal)
		}
	}
	if b.Edges.Has(style.EdgeLeft) {
		for y := y0; y <= y1; y++ {
			set(x0, y, chars.Vertical)
		}
	}
	if b.Edges.Has(style.EdgeRight) {
		for y := y0; y <= y1; y++ {
			set(x1, y, chars.Vertical)
		}
	}
	if b.Edges.Has(style.CornerTopLeft) {
		set(x0, y0, chars.TopLeft)
	}
	if b.Edges.Has(style.CornerTopRight) {
		set(x1, y0, chars.TopRight)
	}
	if b.Edges.Has(style.CornerBottomLeft) {
		set(x0, y1, chars.BottomLeft)
	}
	if b.Edges.Has(style.CornerBottomRight) {
		set(x1, y1, chars.BottomRight)
	}
}

func drawScrollbar(buf *cellbuf.Buffer, n *Node, screen, clip layout.Rect) {
	trackX := screen.X + screen.Width - 1
	trackY := n.ContentBox.Y
	trackHeight := n.ContentBox.Height
	thumbHeight, thumbOffset := layout.ScrollbarThumb(trackHeight, n.ContentSize.Height, n.ScrollY)
	s := backend.DefaultStyle().Reverse(true)
	for y := 0; y < trackHeight; y++ {
		if !clip.Contains(trackX, trackY+y) {
			continue
		}
		r := '│'
		if y >= thumbOffset && y < thumbOffset+thumbHeight {
			r = '█'
		}
		buf.Set(trackX, trackY+y, r, s)
	}
}

func drawText(buf *cellbuf.Buffer, n *Node, screen, clip layout.Rect) {
	s := style.ToBackend(n.TextStyle)
	align := style.TextAlignLeft
	if n.TextStyle.Align != nil {
		align = *n.TextStyle.Align
	}
	for i, line := range n.WrappedText {
		y := screen.Y + i
		if y < clip.Y || y >= clip.Y+clip.Height {
			continue
		}
		x := screen.X
		switch align {
		case style.TextAlignCenter:
			x += maxInt(0, (screen.Width-layout.DisplayWidth(line))/2)
		case style.TextAlignRight:
			x += maxInt(0, screen.Width-layout.DisplayWidth(line))
		}
		drawClippedString(buf, x, y, line, s, clip)
	}
}

func drawClippedString(buf *cellbuf.Buffer, x, y int, text string, s backend.Style, clip layout.Rect) {
	col := x
	for _, r := range text {
		if clip.Contains(col, y) {
			buf.Set(col, y, r, s)
		}
		col += layout.DisplayWidth(string(r))
	}
}

func drawRichText(buf *cellbuf.Buffer, n *Node, screen, clip layout.Rect) {
	lines := wrapSpansAsLines(n.Spans, n.WrappedText)
	for i, line := range lines {
		y := screen.Y + i
		if y < clip.Y || y >= clip.Y+clip.Height {
			continue
		}
		x := screen.X
		for _, sp := range line {
			s := style.ToBackend(style.MergeText(n.TextStyle, sp.Style))
			drawClippedString(buf, x, y, sp.Content, s, clip)
			x += layout.DisplayWidth(sp.Content)
		}
	}
}

// wrapSpansAsLines re-slices the original styled spans into the line
// breaks WrapText already chose for the concatenated plain text, so
// per-span styling survives wrapping (spec §3's RichText is wrapped "as a
// unit").
func wrapSpansAsLines(spans []vnode.Span, wrapped []string) [][]vnode.Span {
	type styledRune struct {
		r     rune
		style style.TextStyle
	}
	var flat []styledRune
	for _, sp := range spans {
		for _, r := range sp.Content {
			flat = append(flat, styledRune{r: r, style: sp.Style})
		}
	}

	var lines [][]vnode.Span
	cursor := 0
	for li, line := range wrapped {
		lineRunes := []rune(line)
		n := len(lineRunes)
		if cursor+n > len(flat) {
			n = len(flat) - cursor
		}
		var cur vnode.Span
		var out []vnode.Span
		started := false
		for i := 0; i < n; i++ {
			sr := flat[cursor+i]
			if !started || !sameTextStyle(cur.Style, sr.style) {
				if started {
					out = append(out, cur)
				}
				cur = vnode.Span{Style: sr.style}
				started = true
			}
			cur.Content += string(sr.r)
		}
		if started {
			out = append(out, cur)
		}
		lines = append(lines, out)
		cursor += n
		if li < len(wrapped)-1 && cursor < len(flat) && flat[cursor].r == ' ' {
			cursor++
		}
	}
	return lines
}

func sameTextStyle(a, b style.TextStyle) bool {
	return a.Color == b.Color && a.Background == b.Background &&
		a.Bold == b.Bold && a.Italic == b.Italic &&
		a.Underline == b.Underline && a.Strikethrough == b.Strikethrough
}
