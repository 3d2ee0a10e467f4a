package vdom

import (
	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Build recursively converts a freshly expanded vnode tree into a new,
// unparented render.Node subtree — used for first render and for every
// Replace/AddChild target. Grounded on vdom.rs's create_render_node.
func Build(vn vnode.VNode) *render.Node {
	switch v := vn.(type) {
	case *vnode.Text:
		return &render.Node{
			Kind:      render.KindText,
			Text:      v.Content,
			TextStyle: v.Style,
			Dirty:     true,
		}
	case *vnode.RichText:
		return &render.Node{
			Kind:      render.KindRichText,
			Spans:     v.Spans,
			TextStyle: v.Style,
			Dirty:     true,
		}
	case *vnode.Container:
		n := &render.Node{
			Kind:          render.KindContainer,
			Base:          v.Base,
			Focus:         v.Focus,
			Hover:         v.Hover,
			Focusable:     v.Focusable,
			Focused:       v.Focused,
			Hovered:       v.Hovered,
			ComponentPath: v.ComponentPath,
			Events:        v.Events,
			Dirty:         true,
		}
		for _, c := range v.Children {
			child := Build(c)
			child.Parent = n
			n.Children = append(n.Children, child)
		}
		return n
	default:
		return &render.Node{Kind: render.KindContainer, Dirty: true}
	}
}
