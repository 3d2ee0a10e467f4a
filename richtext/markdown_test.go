package richtext

import (
	"strings"
	"testing"

	"github.com/zerocore-ai/rxtui/vnode"
)

func spansText(spans []vnode.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Content)
	}
	return b.String()
}

func richTextLines(vnodes []vnode.VNode) []*vnode.RichText {
	lines := make([]*vnode.RichText, 0, len(vnodes))
	for _, v := range vnodes {
		if rt, ok := v.(*vnode.RichText); ok {
			lines = append(lines, rt)
		}
	}
	return lines
}

func TestRenderParagraphMergesInlineEmphasis(t *testing.T) {
	lines := richTextLines(NewRenderer(nil).Render("Hello **world**"))
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	got := spansText(lines[0].Spans)
	if got != "Hello world" {
		t.Fatalf("got %q, want %q", got, "Hello world")
	}
	if len(lines[0].Spans) != 2 {
		t.Fatalf("expected emphasis to split into its own span, got %d spans", len(lines[0].Spans))
	}
}

func TestRenderHeadingUsesLevelStyle(t *testing.T) {
	lines := richTextLines(NewRenderer(nil).Render("# Title"))
	if len(lines) == 0 || spansText(lines[0].Spans) != "Title" {
		t.Fatalf("expected heading text, got %v", lines)
	}
	cfg := DefaultStyleConfig()
	if !textStylesEqual(lines[0].Spans[0].Style, cfg.H1) {
		t.Fatal("expected H1 style on heading span")
	}
}

func TestRenderCodeBlockHighlights(t *testing.T) {
	md := "```go\nfmt.Println(\"hi\")\n```\n"
	lines := richTextLines(NewRenderer(nil).Render(md))

	var found bool
	for _, line := range lines {
		if strings.Contains(spansText(line.Spans), "fmt.Println") {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected highlighted code content")
	}
}

func TestRenderListAddsBulletPrefix(t *testing.T) {
	lines := richTextLines(NewRenderer(nil).Render("- one\n- two\n"))
	var sawBullet bool
	for _, line := range lines {
		if strings.HasPrefix(spansText(line.Spans), "- one") {
			sawBullet = true
		}
	}
	if !sawBullet {
		t.Fatal("expected a bulleted line starting with \"- one\"")
	}
}

func TestContainerWrapsLinesVertically(t *testing.T) {
	c := Container("one\n\ntwo")
	if c.Base.Direction == nil || *c.Base.Direction != 0 {
		t.Fatal("expected vertical direction on the wrapping container")
	}
	if len(c.Children) == 0 {
		t.Fatal("expected rendered lines as children")
	}
}
