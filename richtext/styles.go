package richtext

import "github.com/zerocore-ai/rxtui/style"

// StyleConfig maps markdown elements to TextStyles. Grounded on
// pkg/ui/markdown/styles.go's StyleConfig, flattened to this module's
// style package directly rather than through a theme indirection — this
// framework has no theme package, so role colors are fixed palette
// entries rather than theme-resolved ones.
type StyleConfig struct {
	H1, H2, H3, H4, H5, H6 style.TextStyle

	Bold          style.TextStyle
	Italic        style.TextStyle
	Code          style.TextStyle
	Strikethrough style.TextStyle
	Link          style.TextStyle
	LinkURL       style.TextStyle

	Blockquote       style.TextStyle
	BlockquoteBorder style.TextStyle
	ListBullet       style.TextStyle
	ListNumber       style.TextStyle
	HorizontalRule   style.TextStyle

	CodeBlockBorder style.TextStyle
	CodeBlockLang   style.TextStyle
	CodeBackground  style.Color

	TableHeader style.TextStyle
	TableCell   style.TextStyle
	TableBorder style.TextStyle

	Text style.TextStyle
}

func textStyle(c style.Color, bold, italic bool) style.TextStyle {
	s := style.TextStyle{Color: &c}
	if bold {
		s.Bold = &bold
	}
	if italic {
		s.Italic = &italic
	}
	return s
}

// DefaultStyleConfig returns a fixed palette suitable for a dark terminal
// background, the way pkg/ui/markdown.DefaultStyleConfig derives one from
// a theme — here there is no theme to resolve against, so the roles are
// assigned directly.
func DefaultStyleConfig() *StyleConfig {
	underline := true
	return &StyleConfig{
		H1: textStyle(style.BrightCyan, true, false),
		H2: textStyle(style.White, true, false),
		H3: textStyle(style.White, true, false),
		H4: textStyle(style.BrightBlack, true, false),
		H5: textStyle(style.BrightBlack, false, false),
		H6: textStyle(style.BrightBlack, false, false),

		Bold:          textStyle(style.White, true, false),
		Italic:        textStyle(style.White, false, true),
		Code:          textStyle(style.Yellow, false, false),
		Strikethrough: textStyle(style.BrightBlack, false, false),
		Link:          style.TextStyle{Color: colorPtr(style.Blue), Underline: &underline},
		LinkURL:       textStyle(style.BrightBlack, false, false),

		Blockquote:       textStyle(style.White, false, true),
		BlockquoteBorder: textStyle(style.BrightBlack, false, false),
		ListBullet:       textStyle(style.Cyan, false, false),
		ListNumber:       textStyle(style.Cyan, false, false),
		HorizontalRule:   textStyle(style.BrightBlack, false, false),

		CodeBlockBorder: textStyle(style.Cyan, false, false),
		CodeBlockLang:   textStyle(style.BrightBlack, false, true),
		CodeBackground:  style.RGB(30, 30, 30),

		TableHeader: textStyle(style.White, true, false),
		TableCell:   textStyle(style.White, false, false),
		TableBorder: textStyle(style.BrightBlack, false, false),

		Text: textStyle(style.White, false, false),
	}
}

func colorPtr(c style.Color) *style.Color { return &c }

// mergeInline overlays an inline attribute style (bold/italic/.../color)
// onto the running base style, mirroring markdown.MergeStyle's
// attribute-only overlay (color only replaces when the inline style
// actually names one).
func mergeInline(base, inline style.TextStyle) style.TextStyle {
	return style.MergeText(base, inline)
}
