package vdom

import (
	"testing"

	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

func textVN(s string) *vnode.Text { return &vnode.Text{Content: s} }

func containerVN(children ...vnode.VNode) *vnode.Container {
	return &vnode.Container{Children: children}
}

func TestDiffMinimalityOnIdenticalTree(t *testing.T) {
	vn := containerVN(textVN("a"), textVN("b"))
	old := Build(vn)

	patches := Diff(old, containerVN(textVN("a"), textVN("b")))
	if len(patches) != 0 {
		t.Fatalf("expected zero patches for an identical tree, got %d: %#v", len(patches), patches)
	}
}

func TestDiffIdempotentAfterApply(t *testing.T) {
	vn := containerVN(textVN("a"))
	old := Build(vn)

	next := containerVN(textVN("changed"))
	patches := Diff(old, next)
	if len(patches) == 0 {
		t.Fatal("expected at least one patch for a changed child")
	}
	Apply(patches, &old)

	more := Diff(old, containerVN(textVN("changed")))
	if len(more) != 0 {
		t.Fatalf("expected zero patches after applying and re-diffing the same tree, got %d", len(more))
	}
}

func TestDiffReplaceOnKindMismatch(t *testing.T) {
	old := Build(textVN("hello"))
	patches := Diff(old, containerVN())
	if len(patches) != 1 {
		t.Fatalf("expected exactly one patch, got %d", len(patches))
	}
	if _, ok := patches[0].(Replace); !ok {
		t.Fatalf("expected a Replace patch, got %T", patches[0])
	}
}

func TestDiffUpdateTextOnlyWhenContentOrStyleChanges(t *testing.T) {
	old := Build(textVN("same"))

	if patches := Diff(old, textVN("same")); len(patches) != 0 {
		t.Fatalf("expected no patch for identical text, got %d", len(patches))
	}

	patches := Diff(old, textVN("different"))
	if len(patches) != 1 {
		t.Fatalf("expected one patch, got %d", len(patches))
	}
	up, ok := patches[0].(UpdateText)
	if !ok {
		t.Fatalf("expected UpdateText, got %T", patches[0])
	}
	if up.NewText != "different" {
		t.Fatalf("NewText = %q, want %q", up.NewText, "different")
	}
}

func TestDiffUpdateRichTextOnlyOnSpanChange(t *testing.T) {
	spans := []vnode.Span{{Content: "a"}, {Content: "b"}}
	old := Build(&vnode.RichText{Spans: spans})

	if patches := Diff(old, &vnode.RichText{Spans: spans}); len(patches) != 0 {
		t.Fatalf("expected no patch for identical spans, got %d", len(patches))
	}

	changed := []vnode.Span{{Content: "a"}, {Content: "c"}}
	patches := Diff(old, &vnode.RichText{Spans: changed})
	if len(patches) != 1 {
		t.Fatalf("expected one patch, got %d", len(patches))
	}
	if _, ok := patches[0].(UpdateRichText); !ok {
		t.Fatalf("expected UpdateRichText, got %T", patches[0])
	}
}

func TestDiffUpdatePropsOnlyOnStyleChange(t *testing.T) {
	old := Build(containerVN())

	if patches := Diff(old, containerVN()); len(patches) != 0 {
		t.Fatalf("expected no patch for an unchanged container, got %d", len(patches))
	}

	width := style.Fixed(10)
	next := &vnode.Container{Base: style.Style{Width: &width}}
	patches := Diff(old, next)
	if len(patches) != 1 {
		t.Fatalf("expected one patch, got %d", len(patches))
	}
	if _, ok := patches[0].(UpdateProps); !ok {
		t.Fatalf("expected UpdateProps, got %T", patches[0])
	}
}

func TestApplyUpdatePropsPreservesFocusAndHoverState(t *testing.T) {
	old := Build(containerVN())
	old.Focused = true
	old.Hovered = true

	width := style.Fixed(10)
	next := &vnode.Container{Base: style.Style{Width: &width}, Focused: false, Hovered: false}
	patches := Diff(old, next)
	Apply(patches, &old)

	if !old.Focused || !old.Hovered {
		t.Fatal("UpdateProps patch must not touch the render node's own Focused/Hovered bits")
	}
	if old.Base.Width == nil || old.Base.Width.Cells != 10 {
		t.Fatal("UpdateProps patch did not apply the new Base style")
	}
}

func TestDiffAddAndRemoveChild(t *testing.T) {
	old := Build(containerVN(textVN("a")))

	grown := Diff(old, containerVN(textVN("a"), textVN("b")))
	if len(grown) != 1 {
		t.Fatalf("expected one AddChild patch, got %d", len(grown))
	}
	if _, ok := grown[0].(AddChild); !ok {
		t.Fatalf("expected AddChild, got %T", grown[0])
	}
	Apply(grown, &old)
	if len(old.Children) != 2 {
		t.Fatalf("expected 2 children after AddChild, got %d", len(old.Children))
	}

	shrunk := Diff(old, containerVN(textVN("a")))
	if len(shrunk) != 1 {
		t.Fatalf("expected one RemoveChild patch, got %d", len(shrunk))
	}
	if _, ok := shrunk[0].(RemoveChild); !ok {
		t.Fatalf("expected RemoveChild, got %T", shrunk[0])
	}
	Apply(shrunk, &old)
	if len(old.Children) != 1 {
		t.Fatalf("expected 1 child after RemoveChild, got %d", len(old.Children))
	}
}

func TestDiffPositionalChildMatchingNoKeys(t *testing.T) {
	old := Build(containerVN(textVN("x"), textVN("y")))
	patches := Diff(old, containerVN(textVN("y"), textVN("x")))

	for _, p := range patches {
		if _, ok := p.(Replace); ok {
			t.Fatal("positional diffing should express a swap as UpdateText, not Replace")
		}
	}
	if len(patches) != 2 {
		t.Fatalf("expected one UpdateText patch per child position, got %d", len(patches))
	}
}

func TestApplyReplaceAtRoot(t *testing.T) {
	var root *render.Node = Build(textVN("a"))
	patches := []Patch{Replace{Old: root, New: containerVN()}}
	Apply(patches, &root)

	if root.Kind != render.KindContainer {
		t.Fatalf("expected root to become a container, got kind %v", root.Kind)
	}
}

func TestExpandReplacesMountRecursively(t *testing.T) {
	leafMounted := false
	var gotPath string
	mount := func(component interface{}, path string) vnode.VNode {
		if component == "inner" {
			leafMounted = true
			gotPath = path
			return textVN("inner-rendered")
		}
		return containerVN(&vnode.Mount{Component: "inner"})
	}

	tree := containerVN(&vnode.Mount{Component: "outer"})
	expanded := Expand(tree, "", mount)

	top, ok := expanded.(*vnode.Container)
	if !ok {
		t.Fatalf("expected *vnode.Container at root, got %T", expanded)
	}
	if len(top.Children) != 1 {
		t.Fatalf("expected one expanded child, got %d", len(top.Children))
	}
	inner, ok := top.Children[0].(*vnode.Container)
	if !ok {
		t.Fatalf("expected inner Mount to expand into a Container, got %T", top.Children[0])
	}
	if len(inner.Children) != 1 {
		t.Fatalf("expected inner container to hold the mounted text, got %d children", len(inner.Children))
	}
	txt, ok := inner.Children[0].(*vnode.Text)
	if !ok || txt.Content != "inner-rendered" {
		t.Fatalf("expected mounted text leaf, got %#v", inner.Children[0])
	}
	if !leafMounted {
		t.Fatal("expected the nested Mount to be resolved recursively")
	}
	if gotPath != "0.0" {
		t.Fatalf("expected the nested Mount's path to be derived from its position (\"0.0\"), got %q", gotPath)
	}
}
