package vdom

import "github.com/zerocore-ai/rxtui/render"

// Apply runs a list of patches against the render tree in order. root is
// a pointer to the caller's root-node variable: a Replace targeting the
// root (old.Parent == nil) writes the new root through it, since Go has
// no shared-mutable-cell trick to fall back on the way the original's
// Rc<RefCell<RenderNode>> does.
func Apply(patches []Patch, root **render.Node) {
	for _, p := range patches {
		applyOne(p, root)
	}
}

func applyOne(p Patch, root **render.Node) {
	switch patch := p.(type) {
	case Replace:
		applyReplace(patch, root)
	case UpdateText:
		patch.Node.Text = patch.NewText
		patch.Node.TextStyle = patch.NewStyle
		patch.Node.MarkDirty()
	case UpdateRichText:
		patch.Node.Spans = patch.NewSpans
		patch.Node.TextStyle = patch.NewStyle
		patch.Node.MarkDirty()
	case UpdateProps:
		// Focus/hover state and layout geometry are untouched — only the
		// raw per-state styles are replaced (DESIGN.md Open Question 4).
		patch.Node.Base = patch.Base
		patch.Node.Focus = patch.Focus
		patch.Node.Hover = patch.Hover
		patch.Node.MarkDirty()
	case AddChild:
		child := Build(patch.Child)
		child.Parent = patch.Parent
		if patch.Index >= len(patch.Parent.Children) {
			patch.Parent.Children = append(patch.Parent.Children, child)
		} else {
			patch.Parent.Children = append(patch.Parent.Children[:patch.Index:patch.Index],
				append([]*render.Node{child}, patch.Parent.Children[patch.Index:]...)...)
		}
		patch.Parent.MarkDirty()
	case RemoveChild:
		if patch.Index < len(patch.Parent.Children) {
			patch.Parent.Children = append(patch.Parent.Children[:patch.Index], patch.Parent.Children[patch.Index+1:]...)
			patch.Parent.MarkDirty()
		}
	}
}

func applyReplace(patch Replace, root **render.Node) {
	newNode := Build(patch.New)
	newNode.Dirty = true

	parent := patch.Old.Parent
	if parent == nil {
		*root = newNode
		return
	}
	for i, c := range parent.Children {
		if c == patch.Old {
			parent.Children[i] = newNode
			newNode.Parent = parent
			break
		}
	}
	parent.MarkDirty()
}
