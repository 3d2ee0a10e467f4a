// Package richtext renders markdown source into vnode.RichText lines, an
// authoring helper that sits next to the VNode tree's node-building DSL
// rather than inside it: a view function calls Render and splices the
// result into a Container's Children the same way it would any other
// VNode slice. Grounded on pkg/ui/markdown's goldmark-based
// parser/renderer/highlighter trio.
package richtext

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Parser wraps goldmark for markdown parsing.
type Parser struct {
	md goldmark.Markdown
}

// NewParser returns a parser with GitHub-flavored markdown extensions
// enabled (tables, strikethrough, autolinks, task lists).
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Parser{md: md}
}

func (p *Parser) parse(source []byte) ast.Node {
	return p.md.Parser().Parse(text.NewReader(source))
}

// Renderer turns markdown source into a sequence of RichText lines.
type Renderer struct {
	parser      *Parser
	cfg         *StyleConfig
	highlighter *highlighter
}

// NewRenderer builds a Renderer from cfg. A nil cfg uses DefaultStyleConfig.
func NewRenderer(cfg *StyleConfig) *Renderer {
	if cfg == nil {
		cfg = DefaultStyleConfig()
	}
	return &Renderer{parser: NewParser(), cfg: cfg, highlighter: newHighlighter()}
}

// Render parses content as markdown and returns one VNode (*vnode.RichText)
// per visual line, including blank spacer lines between blocks.
func (r *Renderer) Render(content string) []vnode.VNode {
	root := r.parser.parse([]byte(content))
	st := &renderState{cfg: r.cfg, source: []byte(content), baseStyle: r.cfg.Text, highlighter: r.highlighter}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		renderBlock(node, st, false)
	}
	st.flush(false)
	st.trimTrailingBlank()

	out := make([]vnode.VNode, len(st.lines))
	for i, line := range st.lines {
		out[i] = line
	}
	return out
}

// Container renders content and wraps the resulting lines in a vertical
// Container, ready to splice into a view's own tree.
func Container(content string) *vnode.Container {
	lines := NewRenderer(nil).Render(content)
	vertical := style.Vertical
	return &vnode.Container{
		Base:     style.Style{Direction: &vertical},
		Children: lines,
	}
}

type renderState struct {
	cfg         *StyleConfig
	source      []byte
	baseStyle   style.TextStyle
	lines       []*vnode.RichText
	current     *vnode.RichText
	prefix      []vnode.Span
	highlighter *highlighter
}

func (s *renderState) append(text string, st style.TextStyle) {
	if text == "" {
		return
	}
	if s.current == nil {
		s.current = &vnode.RichText{}
	}
	appendSpan(s.current, text, st)
}

// flush closes the current line, prepending any active block prefix
// (blockquote bar, list bullet). force keeps an empty line (used for
// deliberate blank spacers and single-line blocks).
func (s *renderState) flush(force bool) {
	if s.current == nil && !force {
		return
	}
	spans := append([]vnode.Span{}, s.prefix...)
	if s.current != nil {
		spans = append(spans, s.current.Spans...)
	}
	s.lines = append(s.lines, &vnode.RichText{Spans: spans})
	s.current = nil
}

func (s *renderState) spacer() {
	if n := len(s.lines); n > 0 && len(s.lines[n-1].Spans) == 0 {
		return
	}
	s.lines = append(s.lines, &vnode.RichText{})
}

func (s *renderState) trimTrailingBlank() {
	for len(s.lines) > 0 && len(s.lines[len(s.lines)-1].Spans) == 0 {
		s.lines = s.lines[:len(s.lines)-1]
	}
}

func (s *renderState) withPrefix(extra []vnode.Span, fn func()) {
	prev := s.prefix
	if len(extra) > 0 {
		combined := make([]vnode.Span, 0, len(prev)+len(extra))
		combined = append(combined, prev...)
		combined = append(combined, extra...)
		s.prefix = combined
	}
	fn()
	s.prefix = prev
}

func (s *renderState) withBaseStyle(base style.TextStyle, fn func()) {
	prev := s.baseStyle
	s.baseStyle = base
	fn()
	s.baseStyle = prev
}

func renderBlock(node ast.Node, s *renderState, tight bool) {
	switch n := node.(type) {
	case *ast.Paragraph:
		renderInlineChildren(n, s, s.baseStyle)
		s.flush(false)
		if !tight {
			s.spacer()
		}

	case *ast.TextBlock:
		renderInlineChildren(n, s, s.baseStyle)
		s.flush(false)

	case *ast.Heading:
		renderInlineChildren(n, s, headingStyle(s.cfg, n.Level))
		s.flush(false)
		s.spacer()

	case *ast.Blockquote:
		prefix := []vnode.Span{{Content: "| ", Style: s.cfg.BlockquoteBorder}}
		blockStyle := mergeInline(s.baseStyle, s.cfg.Blockquote)
		s.withPrefix(prefix, func() {
			s.withBaseStyle(blockStyle, func() {
				for child := n.FirstChild(); child != nil; child = child.NextSibling() {
					renderBlock(child, s, tight)
				}
			})
		})
		s.spacer()

	case *ast.List:
		renderList(n, s)
		if !tight {
			s.spacer()
		}

	case *ast.FencedCodeBlock:
		renderCodeBlock(s, n.Text(s.source), string(n.Language(s.source)))
		s.spacer()

	case *ast.CodeBlock:
		renderCodeBlock(s, n.Text(s.source), "")
		s.spacer()

	case *ast.ThematicBreak:
		s.flush(false)
		s.append(strings.Repeat("-", 32), s.cfg.HorizontalRule)
		s.flush(true)
		s.spacer()

	case *extast.Table:
		renderTable(n, s)
		s.spacer()

	default:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			renderBlock(child, s, tight)
		}
	}
}

func renderList(list *ast.List, s *renderState) {
	start := list.Start
	if start == 0 {
		start = 1
	}
	index := start
	depth := listDepth(list)

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		prefix := listPrefix(s, list, index, depth)
		s.withPrefix(prefix, func() {
			if li, ok := item.(*ast.ListItem); ok {
				for child := li.FirstChild(); child != nil; child = child.NextSibling() {
					renderBlock(child, s, list.IsTight)
				}
			}
		})
		index++
		if !list.IsTight {
			s.spacer()
		}
	}
}

func listDepth(list *ast.List) int {
	depth := 0
	for node := list.Parent(); node != nil; node = node.Parent() {
		if _, ok := node.(*ast.List); ok {
			depth++
		}
	}
	return depth
}

func listPrefix(s *renderState, list *ast.List, index, depth int) []vnode.Span {
	indent := strings.Repeat("  ", depth)
	base := s.baseStyle
	bulletStyle := s.cfg.ListBullet
	bullet := "-"
	if list.IsOrdered() {
		bulletStyle = s.cfg.ListNumber
		bullet = fmt.Sprintf("%d.", index)
	}
	var spans []vnode.Span
	if indent != "" {
		spans = append(spans, vnode.Span{Content: indent, Style: base})
	}
	spans = append(spans, vnode.Span{Content: bullet, Style: bulletStyle})
	spans = append(spans, vnode.Span{Content: " ", Style: base})
	return spans
}

func headingStyle(cfg *StyleConfig, level int) style.TextStyle {
	switch level {
	case 1:
		return cfg.H1
	case 2:
		return cfg.H2
	case 3:
		return cfg.H3
	case 4:
		return cfg.H4
	case 5:
		return cfg.H5
	default:
		return cfg.H6
	}
}

func renderCodeBlock(s *renderState, raw []byte, language string) {
	s.flush(false)
	code := strings.TrimRight(string(raw), "\n")

	prefix := []vnode.Span{{Content: "| ", Style: s.cfg.CodeBlockBorder}}
	s.withPrefix(prefix, func() {
		label := language
		if label == "" {
			label = "code"
		}
		s.lines = append(s.lines, &vnode.RichText{
			Spans: append(append([]vnode.Span{}, s.prefix...), vnode.Span{Content: label, Style: s.cfg.CodeBlockLang}),
		})
		for _, line := range s.highlighter.highlight(code, language) {
			line.Spans = append(append([]vnode.Span{}, s.prefix...), line.Spans...)
			s.lines = append(s.lines, line)
		}
	})
}

func renderTable(table *extast.Table, s *renderState) {
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		header, isHeader := row.(*extast.TableHeader)
		var rowNode ast.Node = row
		if isHeader {
			rowNode = header
		}
		var cells []vnode.Span
		for cell := rowNode.FirstChild(); cell != nil; cell = cell.NextSibling() {
			text := collectPlainText(cell, s.source)
			cellStyle := s.cfg.TableCell
			if isHeader {
				cellStyle = s.cfg.TableHeader
			}
			cells = append(cells, vnode.Span{Content: text, Style: cellStyle})
			if cell.NextSibling() != nil {
				cells = append(cells, vnode.Span{Content: " | ", Style: s.cfg.TableBorder})
			}
		}
		s.lines = append(s.lines, &vnode.RichText{Spans: append(append([]vnode.Span{}, s.prefix...), cells...)})
	}
}

func renderInlineChildren(node ast.Node, s *renderState, st style.TextStyle) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		renderInline(child, s, st)
	}
}

func renderInline(node ast.Node, s *renderState, st style.TextStyle) {
	switch n := node.(type) {
	case *ast.Text:
		text := string(n.Segment.Value(s.source))
		if text != "" {
			s.append(text, st)
		}
		if n.SoftLineBreak() {
			s.append(" ", st)
		}
		if n.HardLineBreak() {
			s.flush(true)
		}

	case *ast.String:
		if text := string(n.Value); text != "" {
			s.append(text, st)
		}

	case *ast.CodeSpan:
		s.append(collectPlainText(n, s.source), s.cfg.Code)

	case *ast.Emphasis:
		inline := s.cfg.Italic
		if n.Level >= 2 {
			inline = s.cfg.Bold
		}
		renderInlineChildren(n, s, mergeInline(st, inline))

	case *extast.Strikethrough:
		renderInlineChildren(n, s, mergeInline(st, s.cfg.Strikethrough))

	case *ast.Link:
		renderInlineChildren(n, s, mergeInline(st, s.cfg.Link))
		dest := string(n.Destination)
		label := collectPlainText(n, s.source)
		if dest != "" && dest != label {
			s.append(" ("+dest+")", s.cfg.LinkURL)
		}

	case *ast.Image:
		renderInlineChildren(n, s, mergeInline(st, s.cfg.Link))
		if dest := string(n.Destination); dest != "" {
			s.append(" ("+dest+")", s.cfg.LinkURL)
		}

	case *ast.AutoLink:
		s.append(string(n.URL(s.source)), mergeInline(st, s.cfg.Link))

	case *extast.TaskCheckBox:
		box := "[ ] "
		if n.IsChecked {
			box = "[x] "
		}
		s.append(box, s.cfg.ListBullet)

	default:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			renderInline(child, s, st)
		}
	}
}

func collectPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
			if t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			walk(child)
		}
	}
	walk(node)
	return b.String()
}
