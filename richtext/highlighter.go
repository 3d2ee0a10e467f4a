package richtext

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/zerocore-ai/rxtui/style"
	"github.com/zerocore-ai/rxtui/vnode"
)

// highlighter applies chroma syntax highlighting to fenced code blocks,
// grounded directly on pkg/ui/markdown/highlighter.go's lexer-select →
// tokenize → per-token-style loop, targeting vnode.Span/RichText instead
// of this module's StyledSpan/StyledLine.
type highlighter struct {
	palette codePalette
}

type codePalette struct {
	Default     style.TextStyle
	Keyword     style.TextStyle
	TypeName    style.TextStyle
	Function    style.TextStyle
	String      style.TextStyle
	Number      style.TextStyle
	Comment     style.TextStyle
	Operator    style.TextStyle
	Punctuation style.TextStyle
	Builtin     style.TextStyle
	Variable    style.TextStyle
	Attribute   style.TextStyle
	Tag         style.TextStyle
	Error       style.TextStyle
}

func newHighlighter() *highlighter {
	return &highlighter{palette: codePalette{
		Default:     textStyle(style.White, false, false),
		Keyword:     textStyle(style.Magenta, true, false),
		TypeName:    textStyle(style.Cyan, false, false),
		Function:    textStyle(style.Blue, false, false),
		String:      textStyle(style.Green, false, false),
		Number:      textStyle(style.Yellow, false, false),
		Comment:     textStyle(style.BrightBlack, false, true),
		Operator:    textStyle(style.White, false, false),
		Punctuation: textStyle(style.BrightBlack, false, false),
		Builtin:     textStyle(style.Cyan, false, false),
		Variable:    textStyle(style.White, false, false),
		Attribute:   textStyle(style.Blue, false, false),
		Tag:         textStyle(style.Magenta, false, false),
		Error:       textStyle(style.Red, true, false),
	}}
}

// highlight tokenizes code in language (best-effort detected when empty or
// unknown) and returns one RichText per line. code with no recognizable
// lexer still renders, via chroma's plaintext fallback.
func (h *highlighter) highlight(code, language string) []*vnode.RichText {
	if code == "" {
		return []*vnode.RichText{{}}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainCodeLines(code)
	}

	var lines []*vnode.RichText
	current := &vnode.RichText{}
	flush := func() {
		lines = append(lines, current)
		current = &vnode.RichText{}
	}

	for token := iter(); token != chroma.EOF; token = iter() {
		if token.Value == "" {
			continue
		}
		s := h.styleForToken(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if part != "" {
				appendSpan(current, part, s)
			}
			if i < len(parts)-1 {
				flush()
			}
		}
	}
	lines = append(lines, current)
	return lines
}

func (h *highlighter) styleForToken(ttype chroma.TokenType) style.TextStyle {
	if ttype == chroma.Error {
		return h.palette.Error
	}
	switch {
	case ttype.InCategory(chroma.Comment):
		return h.palette.Comment
	case ttype.InCategory(chroma.Keyword):
		return h.palette.Keyword
	case ttype.InCategory(chroma.LiteralString):
		return h.palette.String
	case ttype.InCategory(chroma.LiteralNumber):
		return h.palette.Number
	case ttype.InCategory(chroma.Operator):
		return h.palette.Operator
	case ttype.InCategory(chroma.Punctuation):
		return h.palette.Punctuation
	case ttype.InCategory(chroma.Name):
		switch ttype {
		case chroma.NameFunction, chroma.NameFunctionMagic:
			return h.palette.Function
		case chroma.NameClass, chroma.NameNamespace:
			return h.palette.TypeName
		case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
			return h.palette.Builtin
		case chroma.NameVariable, chroma.NameVariableClass, chroma.NameVariableGlobal, chroma.NameVariableInstance, chroma.NameVariableMagic:
			return h.palette.Variable
		case chroma.NameTag:
			return h.palette.Tag
		case chroma.NameAttribute:
			return h.palette.Attribute
		case chroma.NameConstant:
			return h.palette.Number
		}
	}
	return h.palette.Default
}

func plainCodeLines(code string) []*vnode.RichText {
	parts := strings.Split(code, "\n")
	lines := make([]*vnode.RichText, 0, len(parts))
	for _, part := range parts {
		rt := &vnode.RichText{}
		if part != "" {
			appendSpan(rt, part, textStyle(style.White, false, false))
		}
		lines = append(lines, rt)
	}
	return lines
}

// appendSpan coalesces a run into the previous span when its style is
// unchanged, matching markdown.appendStyledSpan.
func appendSpan(rt *vnode.RichText, text string, s style.TextStyle) {
	if text == "" {
		return
	}
	if n := len(rt.Spans); n > 0 && textStylesEqual(rt.Spans[n-1].Style, s) {
		rt.Spans[n-1].Content += text
		return
	}
	rt.Spans = append(rt.Spans, vnode.Span{Content: text, Style: s})
}

func textStylesEqual(a, b style.TextStyle) bool {
	return colorsEqual(a.Color, b.Color) &&
		colorsEqual(a.Background, b.Background) &&
		boolsEqual(a.Bold, b.Bold) &&
		boolsEqual(a.Italic, b.Italic) &&
		boolsEqual(a.Underline, b.Underline) &&
		boolsEqual(a.Strikethrough, b.Strikethrough)
}

func colorsEqual(a, b *style.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func boolsEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
