package focus

import (
	"testing"

	"github.com/zerocore-ai/rxtui/render"
)

func focusableNode() *render.Node {
	return &render.Node{Kind: render.KindContainer, Focusable: true}
}

func tree(nodes ...*render.Node) *render.Node {
	root := &render.Node{Kind: render.KindContainer}
	for _, n := range nodes {
		n.Parent = root
		root.Children = append(root.Children, n)
	}
	return root
}

func TestScopeFirstSyncAutoSelectsNone(t *testing.T) {
	scope := NewScope()
	root := tree(focusableNode(), focusableNode())
	scope.Sync(root)
	if scope.Current() != nil {
		t.Fatal("Sync must not auto-focus anything on its own")
	}
	if scope.Count() != 2 {
		t.Fatalf("expected 2 focusable nodes, got %d", scope.Count())
	}
}

func TestScopeCycleWrapsAround(t *testing.T) {
	scope := NewScope()
	a, b, c := focusableNode(), focusableNode(), focusableNode()
	root := tree(a, b, c)
	scope.Sync(root)

	scope.FocusFirst()
	if scope.Current() != a {
		t.Fatal("expected node a focused first")
	}
	scope.FocusNext()
	if scope.Current() != b {
		t.Fatal("expected node b focused next")
	}
	scope.FocusNext()
	if scope.Current() != c {
		t.Fatal("expected node c focused next")
	}
	scope.FocusNext()
	if scope.Current() != a {
		t.Fatal("expected FocusNext to wrap back to a")
	}
	scope.FocusPrev()
	if scope.Current() != c {
		t.Fatal("expected FocusPrev from a to wrap to c")
	}
}

func TestScopeSyncPreservesSelectionByIdentity(t *testing.T) {
	scope := NewScope()
	a, b := focusableNode(), focusableNode()
	root := tree(a, b)
	scope.Sync(root)
	scope.SetFocus(b)

	scope.Sync(root)
	if scope.Current() != b {
		t.Fatal("expected re-sync to preserve the previously focused node")
	}
	if !b.Focused {
		t.Fatal("expected the focused node's Focused bit to be set")
	}
	if a.Focused {
		t.Fatal("expected the non-focused node's Focused bit to be false")
	}
}

func TestScopeFocusUniqueness(t *testing.T) {
	scope := NewScope()
	a, b := focusableNode(), focusableNode()
	root := tree(a, b)
	scope.Sync(root)

	scope.FocusFirst()
	scope.SetFocus(b)
	if a.Focused {
		t.Fatal("expected at most one node focused at a time")
	}
	if !b.Focused {
		t.Fatal("expected b to be focused after SetFocus")
	}
}

func TestScopeClearFocus(t *testing.T) {
	scope := NewScope()
	a := focusableNode()
	root := tree(a)
	scope.Sync(root)
	scope.FocusFirst()
	scope.ClearFocus()
	if scope.Current() != nil {
		t.Fatal("expected ClearFocus to remove the current selection")
	}
	if a.Focused {
		t.Fatal("expected ClearFocus to unset the node's Focused bit")
	}
}
