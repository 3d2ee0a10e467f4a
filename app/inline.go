package app

import "github.com/zerocore-ai/rxtui/backend"

// inlineState tracks the reserved height for Inline mode. The original's
// InlineState reserves real terminal scrollback space by writing raw
// cursor-movement escapes directly to stdout, bypassing its terminal
// abstraction entirely; backend.Backend has no such raw-write escape
// hatch (by design — every other part of this framework draws only
// through SetContent), so here Inline mode means sizing the render
// viewport to the chosen height policy rather than reserving scrollback
// lines outside the Backend's own screen. reservedHeight/resolveHeight
// still implement the real height-policy semantics (DESIGN.md Open
// Question 8).
type inlineState struct {
	reservedHeight int
}

func newInlineState() *inlineState { return &inlineState{} }

// resolveHeight applies an InlineHeight policy. measuredContent is the
// tree's natural (unclamped) content height, used by InlineHeightContent.
func (s *inlineState) resolveHeight(h InlineHeight, measuredContent int) int {
	switch h.Kind {
	case InlineHeightFixed:
		return h.Fixed
	case InlineHeightFill:
		if measuredContent < h.Min {
			return h.Min
		}
		return measuredContent
	default: // InlineHeightContent
		height := measuredContent
		if h.Max > 0 && height > h.Max {
			height = h.Max
		}
		return height
	}
}

// reserve establishes the initial reserved height.
func (s *inlineState) reserve(b backend.Backend, height int) {
	s.reservedHeight = height
}

// expand grows the reserved height; per the original, reserved space
// only ever grows across a session, never shrinks, so a shorter frame
// still draws against the tallest height seen so far.
func (s *inlineState) expand(b backend.Backend, height int) {
	if height <= s.reservedHeight {
		return
	}
	s.reservedHeight = height
}

// moveToEnd leaves the cursor positioned below the rendered area on
// exit, the way the original's move_to_end prepares the shell prompt to
// reappear on a fresh line below the surviving content.
func (s *inlineState) moveToEnd(b backend.Backend) {
	b.SetCursorPos(0, s.reservedHeight)
	b.ShowCursor()
}
