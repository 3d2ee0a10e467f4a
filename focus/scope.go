// Package focus tracks which render.Node currently holds keyboard focus
// and cycles it Tab/Shift+Tab style. Adapted from
// pkg/ui/runtime/focus.go's FocusScope, generalized from a registration
// list built up by long-lived widget objects to a fresh document-order
// walk of the render tree every frame — our render.Node tree is rebuilt
// by diff/patch each frame rather than holding persistent widget
// objects, so there is nothing to Register/Unregister; Sync recomputes
// the focusable set from scratch and carries the previous selection
// forward by node identity.
package focus

import "github.com/zerocore-ai/rxtui/render"

// Scope is one focus ring — normally one per application, since this
// spec has no modal-layer concept the teacher's per-layer scopes exist
// for.
type Scope struct {
	widgets []*render.Node
	current int
}

func NewScope() *Scope { return &Scope{current: -1} }

// Sync rebuilds the focusable set in document order from root, carrying
// the current selection forward if that node is still focusable and
// present, and stamps every node's Focused bit so render.Node.Resolve
// picks up the right style without the focus package reaching into
// draw/layout at all.
func (s *Scope) Sync(root *render.Node) {
	var focusable []*render.Node
	for _, n := range render.DocumentOrder(root, nil) {
		if n.Kind == render.KindContainer && n.Focusable {
			focusable = append(focusable, n)
		}
	}

	var prev *render.Node
	if s.current >= 0 && s.current < len(s.widgets) {
		prev = s.widgets[s.current]
	}

	s.widgets = focusable
	s.current = -1
	if prev != nil {
		for i, w := range focusable {
			if w == prev {
				s.current = i
				break
			}
		}
	}

	for i, w := range s.widgets {
		w.Focused = i == s.current
	}
}

// Current returns the focused node, or nil.
func (s *Scope) Current() *render.Node {
	if s.current >= 0 && s.current < len(s.widgets) {
		return s.widgets[s.current]
	}
	return nil
}

// SetFocus focuses a specific node (used for click-to-focus), reporting
// whether focus changed.
func (s *Scope) SetFocus(n *render.Node) bool {
	for i, w := range s.widgets {
		if w == n {
			return s.focusIndex(i)
		}
	}
	return false
}

// FocusFirst focuses the first focusable node.
func (s *Scope) FocusFirst() bool {
	if len(s.widgets) == 0 {
		return false
	}
	return s.focusIndex(0)
}

// FocusLast focuses the last focusable node.
func (s *Scope) FocusLast() bool {
	if len(s.widgets) == 0 {
		return false
	}
	return s.focusIndex(len(s.widgets) - 1)
}

// FocusNext moves focus forward, wrapping around.
func (s *Scope) FocusNext() bool {
	if len(s.widgets) == 0 {
		return false
	}
	next := (s.current + 1) % len(s.widgets)
	return s.focusIndex(next)
}

// FocusPrev moves focus backward, wrapping around.
func (s *Scope) FocusPrev() bool {
	if len(s.widgets) == 0 {
		return false
	}
	prev := s.current - 1
	if prev < 0 {
		prev = len(s.widgets) - 1
	}
	return s.focusIndex(prev)
}

// ClearFocus removes focus from whatever node currently holds it.
func (s *Scope) ClearFocus() {
	if s.current >= 0 && s.current < len(s.widgets) {
		s.widgets[s.current].Focused = false
	}
	s.current = -1
}

// Count returns the number of currently focusable nodes.
func (s *Scope) Count() int { return len(s.widgets) }

func (s *Scope) focusIndex(i int) bool {
	if i == s.current {
		return false
	}
	if s.current >= 0 && s.current < len(s.widgets) {
		s.widgets[s.current].Focused = false
	}
	s.current = i
	if i >= 0 && i < len(s.widgets) {
		s.widgets[i].Focused = true
	}
	return true
}
