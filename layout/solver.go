package layout

import (
	"github.com/zerocore-ai/rxtui/style"
)

// Solve runs the two-pass algorithm from spec §4.3 over root and its
// descendants: pass one measures intrinsic (content) sizes bottom-up,
// pass two resolves concrete sizes and positions top-down. unclamped lets
// an inline-mode host measure a root's natural height without clamping it
// to the viewport (spec §6 inline height policies).
func Solve(root *Item, viewportWidth, viewportHeight int, unclamped bool) {
	measureIntrinsic(root)
	box := Rect{X: 0, Y: 0, Width: viewportWidth, Height: viewportHeight}
	resolveAndPosition(root, box, unclamped)
}

// measureIntrinsic computes each item's natural (unconstrained) size,
// bottom-up. A text leaf's intrinsic size is its unwrapped display width
// and a single line of height — actual wrapped height is resolved once
// the item's final width is known, during resolveAndPosition.
func measureIntrinsic(it *Item) Size {
	var size Size
	switch it.Kind {
	case KindLeaf:
		size = Size{Width: DisplayWidth(it.Text), Height: 1}
	default:
		mainSum, crossMax := 0, 0
		n := 0
		for _, c := range it.Children {
			if c.isAbsolute() {
				measureIntrinsic(c)
				continue
			}
			cs := measureIntrinsic(c)
			main, cross := axisMainCross(it.Direction, cs)
			mainSum += main
			if cross > crossMax {
				crossMax = cross
			}
			n++
		}
		if n > 1 {
			mainSum += it.Gap * (n - 1)
		}
		padMain, padCross := spacingMainCross(it.Direction, it.Padding)
		bMain, bCross := spacingMainCross(it.Direction, borderSpacing(it.Border))
		size = sizeFromAxis(it.Direction, mainSum+padMain+bMain, crossMax+padCross+bCross)
	}
	it.Intrinsic = size
	return size
}

// resolveDim resolves one dimension of an item against the space its
// parent offers, per spec §4.3's four kinds: Fixed is the literal value
// (clamped to the available space unless unclamped), Fraction is a
// floored share of the parent with a floor of one cell, Content is the
// intrinsic size, and Auto fills what's offered when resolved outside of
// main-axis distribution (root, absolute children). On a flow line's
// cross axis, layoutLine gives an Auto child its intrinsic cross size.
func resolveDim(dim style.Dimension, avail, intrinsic int, unclamped bool) int {
	switch dim.Kind {
	case style.DimFixed:
		v := dim.Cells
		if !unclamped && v > avail {
			v = avail
		}
		if v < 0 {
			v = 0
		}
		return v
	case style.DimFraction:
		v := int(float64(avail) * dim.Ratio)
		if v < 1 {
			v = 1
		}
		return v
	case style.DimContent:
		return intrinsic
	default: // style.DimAuto
		if avail < 0 {
			avail = 0
		}
		return avail
	}
}

func resolveAndPosition(it *Item, outer Rect, unclamped bool) {
	afterMargin := outer.Inset(it.Margin.Top, it.Margin.Right, it.Margin.Bottom, it.Margin.Left)

	w := clampDimension(resolveDim(it.Width, afterMargin.Width, it.Intrinsic.Width, unclamped), it.MinWidth, it.MaxWidth)
	hUnclamped := unclamped
	h := clampDimension(resolveDim(it.Height, afterMargin.Height, it.Intrinsic.Height, hUnclamped), it.MinHeight, it.MaxHeight)

	it.Rect = Rect{X: afterMargin.X, Y: afterMargin.Y, Width: w, Height: h}

	inner := insetBySpacing(it.Rect, borderSpacing(it.Border))
	content := insetBySpacing(inner, it.Padding)
	it.ContentBox = content

	switch it.Kind {
	case KindLeaf:
		resolveLeaf(it, content)
	default:
		layoutChildren(it, content, unclamped)
		computeScroll(it, content)
	}
}

func resolveLeaf(it *Item, content Rect) {
	if content.Width <= 0 {
		it.WrappedText = []string{it.Text}
		return
	}
	it.WrappedText = WrapText(it.Text, content.Width, it.TextWrapMode)
	if it.Height.Kind == style.DimContent || it.Height.Kind == style.DimAuto {
		it.Rect.Height = clampDimension(len(it.WrappedText), it.MinHeight, it.MaxHeight)
	}
}

// layoutChildren partitions flow children into wrapped lines (a single
// line when wrap is disabled), sizes and positions each line along the
// main axis per justify-content and the Fixed/Fraction/Content/Auto
// rules, positions lines along the cross axis per align-items/align-self,
// then separately places position:absolute children against the
// content box's origin.
func layoutChildren(it *Item, content Rect, unclamped bool) {
	var flow, absolute []*Item
	for _, c := range it.Children {
		if c.isAbsolute() {
			absolute = append(absolute, c)
		} else {
			flow = append(flow, c)
		}
	}

	mainAvail, _ := axisMainCross(it.Direction, content.Size())
	lines := splitLines(flow, it.Direction, it.ChildWrap, mainAvail, it.Gap)

	crossCursor := 0
	for _, line := range lines {
		crossCursor += layoutLine(it, line, content, crossCursor, unclamped)
		crossCursor += it.Gap
	}

	for _, c := range absolute {
		placeAbsolute(c, content, unclamped)
	}
}

// splitLines greedily packs children into lines that fit mainAvail. With
// wrapping disabled, every child goes on one line regardless of overflow
// (horizontal overflow is simply clipped at draw time — no horizontal
// scrolling, per spec non-goals).
func splitLines(items []*Item, dir style.Direction, wrap style.WrapMode, mainAvail, gap int) [][]*Item {
	if wrap == style.NoWrap || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return [][]*Item{items}
	}
	var lines [][]*Item
	var cur []*Item
	used := 0
	for _, c := range items {
		main, _ := axisMainCross(dir, c.Intrinsic)
		need := main
		if len(cur) > 0 {
			need += gap
		}
		if len(cur) > 0 && used+need > mainAvail {
			lines = append(lines, cur)
			cur = nil
			used = 0
			need = main
		}
		cur = append(cur, c)
		used += need
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	if wrap == style.WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}

// layoutLine sizes and positions one line of children and returns the
// cross-axis extent it consumed.
func layoutLine(parent *Item, line []*Item, content Rect, crossOffset int, unclamped bool) int {
	dir := parent.Direction
	mainAvail, crossAvail := axisMainCross(dir, content.Size())

	sizedMain := make([]int, len(line))
	var autoIdx []int
	usedMain := 0
	for i, c := range line {
		mainDim, _ := axisDims(dir, c)
		if mainDim.Kind == style.DimAuto {
			autoIdx = append(autoIdx, i)
			continue
		}
		main, _ := axisMainCross(dir, c.Intrinsic)
		sizedMain[i] = clampMainDim(c, dir, resolveDim(mainDim, mainAvail, main, unclamped))
		if c.Kind == KindLeaf && dir == style.Horizontal && sizedMain[i] > mainAvail {
			sizedMain[i] = mainAvail
		}
		usedMain += sizedMain[i]
	}
	if len(line) > 1 {
		usedMain += parent.Gap * (len(line) - 1)
	}
	if len(autoIdx) > 0 {
		remainder := mainAvail - usedMain
		if remainder < 0 {
			remainder = 0
		}
		share := remainder / len(autoIdx)
		extra := remainder % len(autoIdx)
		for rank, i := range autoIdx {
			v := share
			if rank < extra {
				v++
			}
			sizedMain[i] = clampMainDim(line[i], dir, v)
			usedMain += sizedMain[i]
		}
	}

	crossSizes := make([]int, len(line))
	lineCross := 0
	for i, c := range line {
		_, crossDim := axisDims(dir, c)
		_, crossIntrinsic := axisMainCross(dir, c.Intrinsic)
		var cs int
		if crossDim.Kind == style.DimAuto {
			cs = crossIntrinsic
		} else {
			cs = resolveDim(crossDim, crossAvail, crossIntrinsic, unclamped)
		}
		cs = clampCrossDim(c, dir, cs)
		if c.Kind == KindLeaf && dir == style.Vertical && cs > crossAvail {
			cs = crossAvail
		}
		crossSizes[i] = cs
		if cs > lineCross {
			lineCross = cs
		}
	}

	mainStart, mainGap := justify(parent.Justify, mainAvail, usedMain, len(line))

	cursor := mainStart
	for i, c := range line {
		align := c.AlignSelf
		if align == style.AlignSelfAuto {
			align = alignItemsToSelf(parent.Align)
		}
		crossPos := alignCross(align, lineCross, crossSizes[i])

		var x, y int
		if dir == style.Horizontal {
			x = content.X + cursor
			y = content.Y + crossOffset + crossPos
		} else {
			x = content.X + crossOffset + crossPos
			y = content.Y + cursor
		}

		childOuterMain := sizedMain[i]
		var box Rect
		if dir == style.Horizontal {
			box = Rect{X: x, Y: y, Width: childOuterMain, Height: crossSizes[i]}
		} else {
			box = Rect{X: x, Y: y, Width: crossSizes[i], Height: childOuterMain}
		}
		resolveWithBox(c, box, unclamped)

		cursor += sizedMain[i] + mainGap
		if i < len(line)-1 {
			cursor += parent.Gap
		}
	}

	return lineCross
}

// resolveWithBox resolves an already-positioned, already-sized child: its
// Width/Height dimensions are treated as exactly box's size (the line
// layout already applied Fixed/Fraction/Content/Auto resolution), so we
// bypass resolveDim and go straight to the box+padding+children pipeline.
func resolveWithBox(it *Item, box Rect, unclamped bool) {
	it.Rect = box
	inner := insetBySpacing(it.Rect, borderSpacing(it.Border))
	content := insetBySpacing(inner, it.Padding)
	it.ContentBox = content
	switch it.Kind {
	case KindLeaf:
		resolveLeaf(it, content)
	default:
		layoutChildren(it, content, unclamped)
		computeScroll(it, content)
	}
}

func placeAbsolute(it *Item, parentContent Rect, unclamped bool) {
	w := clampDimension(resolveDim(it.Width, parentContent.Width, it.Intrinsic.Width, unclamped), it.MinWidth, it.MaxWidth)
	h := clampDimension(resolveDim(it.Height, parentContent.Height, it.Intrinsic.Height, unclamped), it.MinHeight, it.MaxHeight)

	x := parentContent.X
	if it.Left != nil {
		x = parentContent.X + *it.Left
	} else if it.Right != nil {
		x = parentContent.X + parentContent.Width - w - *it.Right
	}
	y := parentContent.Y
	if it.Top != nil {
		y = parentContent.Y + *it.Top
	} else if it.Bottom != nil {
		y = parentContent.Y + parentContent.Height - h - *it.Bottom
	}

	resolveWithBox(it, Rect{X: x, Y: y, Width: w, Height: h}, unclamped)
}

func axisDims(dir style.Direction, it *Item) (main, cross style.Dimension) {
	if dir == style.Horizontal {
		return it.Width, it.Height
	}
	return it.Height, it.Width
}

func clampMainDim(it *Item, dir style.Direction, v int) int {
	if dir == style.Horizontal {
		return clampDimension(v, it.MinWidth, it.MaxWidth)
	}
	return clampDimension(v, it.MinHeight, it.MaxHeight)
}

func clampCrossDim(it *Item, dir style.Direction, v int) int {
	if dir == style.Horizontal {
		return clampDimension(v, it.MinHeight, it.MaxHeight)
	}
	return clampDimension(v, it.MinWidth, it.MaxWidth)
}

// justify returns the offset of the first child and the extra gap to
// insert between children for the given justify-content mode.
func justify(j style.JustifyContent, avail, used, n int) (start, gapBetween int) {
	slack := avail - used
	if slack < 0 {
		slack = 0
	}
	switch j {
	case style.JustifyCenter:
		return slack / 2, 0
	case style.JustifyEnd:
		return slack, 0
	case style.JustifySpaceBetween:
		if n <= 1 {
			return 0, 0
		}
		return 0, slack / (n - 1)
	case style.JustifySpaceAround:
		if n == 0 {
			return 0, 0
		}
		unit := slack / n
		return unit / 2, unit
	case style.JustifySpaceEvenly:
		unit := slack / (n + 1)
		return unit, unit
	default: // style.JustifyStart
		return 0, 0
	}
}

func alignItemsToSelf(a style.AlignItems) style.AlignSelf {
	switch a {
	case style.AlignCenter:
		return style.AlignSelfCenter
	case style.AlignEnd:
		return style.AlignSelfEnd
	default:
		return style.AlignSelfStart
	}
}

func alignCross(a style.AlignSelf, lineCross, childCross int) int {
	slack := lineCross - childCross
	if slack < 0 {
		slack = 0
	}
	switch a {
	case style.AlignSelfCenter:
		return slack / 2
	case style.AlignSelfEnd:
		return slack
	default:
		return 0
	}
}

func computeScroll(it *Item, content Rect) {
	maxBottom := content.Y
	for _, c := range it.Children {
		if c.isAbsolute() {
			continue
		}
		bottom := c.Rect.Y + c.Rect.Height
		if bottom > maxBottom {
			maxBottom = bottom
		}
	}
	contentHeight := maxBottom - content.Y
	it.ContentSize = Size{Width: content.Width, Height: contentHeight}

	it.Scrollable = (it.Overflow == style.OverflowScroll || it.Overflow == style.OverflowAuto) && contentHeight > content.Height
	it.MaxScrollY = maxInt(0, contentHeight-content.Height)
	it.ScrollY = clampInt(it.ScrollY, 0, it.MaxScrollY)
}
