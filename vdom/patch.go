// Package vdom turns a freshly expanded vnode.VNode tree and the previous
// render.Node tree into a minimal list of patches, then applies them in
// place: Expand resolves mounted components, Diff compares trees, Build
// constructs fresh subtrees, and Apply mutates the render tree to match.
package vdom

import (
	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Patch is the closed set of mutations Diff can produce, mirroring the
// original's Patch enum: Replace, UpdateText, UpdateRichText, UpdateProps,
// AddChild, RemoveChild.
type Patch interface {
	patchMarker()
}

// Replace swaps an entire subtree with a freshly built one — emitted
// whenever old and new disagree on node kind (container vs text vs
// richtext).
type Replace struct {
	Old *render.Node
	New vnode.VNode
}

func (Replace) patchMarker() {}

// UpdateText changes a text leaf's content/style in place.
type UpdateText struct {
	Node     *render.Node
	NewText  string
	NewStyle style.TextStyle
}

func (UpdateText) patchMarker() {}

// UpdateRichText changes a richtext leaf's spans/style in place.
type UpdateRichText struct {
	Node     *render.Node
	NewSpans []vnode.Span
	NewStyle style.TextStyle
}

func (UpdateRichText) patchMarker() {}

// UpdateProps changes a container's visual style in place, preserving its
// focus/hover state and layout geometry.
type UpdateProps struct {
	Node  *render.Node
	Base  style.Style
	Focus style.Style
	Hover style.Style
}

func (UpdateProps) patchMarker() {}

// AddChild inserts a freshly built subtree as parent's child at index.
type AddChild struct {
	Parent *render.Node
	Child  vnode.VNode
	Index  int
}

func (AddChild) patchMarker() {}

// RemoveChild deletes parent's child at index.
type RemoveChild struct {
	Parent *render.Node
	Index  int
}

func (RemoveChild) patchMarker() {}
