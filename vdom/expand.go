package vdom

import (
	"strconv"

	"github.com/zerocore-ai/rxtui/vnode"
)

// MountFunc renders the component held by a vnode.Mount node into its own
// (possibly still Mount-bearing) view tree. path is that Mount's dotted
// identity, derived from its position in the tree rather than supplied by
// the view author. The component package supplies this — vdom only knows
// how to walk the result, never how to run update/view itself, keeping
// vdom decoupled from component lifecycle.
type MountFunc func(component interface{}, path string) vnode.VNode

// Expand walks vn and replaces every Mount with the result of mounting its
// component, recursing until no Mount nodes remain. path is the identity
// of vn itself, built up child-by-index as Expand descends — mirroring
// the original's parent_id.child(child_index) assignment. The returned
// tree is safe to pass to Diff/Build.
func Expand(vn vnode.VNode, path string, mount MountFunc) vnode.VNode {
	switch v := vn.(type) {
	case *vnode.Mount:
		return Expand(mount(v.Component, path), path, mount)
	case *vnode.Container:
		// ComponentPath is stamped from this call's own position, not
		// copied from whatever the view author left on it — mirroring
		// node_to_vnode's "vnode_div.component_path = Some(parent_id)".
		// The container produced at the exact point a component's View
		// returns (the top-level call in Runtime.step) gets that
		// component's own identity; containers nested deeper within the
		// same view get their own, more specific position, the same way
		// the original's component_path varies with depth.
		out := &vnode.Container{
			Base:          v.Base,
			Focus:         v.Focus,
			Hover:         v.Hover,
			Focusable:     v.Focusable,
			Focused:       v.Focused,
			Hovered:       v.Hovered,
			ComponentPath: path,
			Events:        v.Events,
		}
		out.Children = make([]vnode.VNode, len(v.Children))
		for i, c := range v.Children {
			out.Children[i] = Expand(c, childPath(path, i), mount)
		}
		return out
	default:
		// Text and RichText carry no children and can never hold a Mount.
		return vn
	}
}

func childPath(parent string, index int) string {
	if parent == "" {
		return strconv.Itoa(index)
	}
	return parent + "." + strconv.Itoa(index)
}
