package vnode

import "github.com/zerocore-ai/rxtui/style"

// These are small constructor helpers standing in for the node-building
// DSL that is out of scope for this core (spec §1) — enough surface for
// tests and for component view() implementations to build trees directly.

// TextNode builds a plain Text VNode.
func TextNode(content string, s style.TextStyle) *Text {
	return &Text{Content: content, Style: s}
}

// ContainerNode builds a Container with the given children and base style.
func ContainerNode(base style.Style, children ...VNode) *Container {
	return &Container{Base: base, Children: children}
}
