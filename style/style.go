package style

// Style is a container's full set of visual and layout properties. Every
// field is a pointer so "unset" is distinguishable from "set to zero
// value" — Merge relies on that to implement last-wins-per-field overlay
// (used for base → focus → hover composition, §9 Open Question 3).
type Style struct {
	Background *Color
	Direction  *Direction
	Padding    *Spacing
	Margin     *Spacing
	Overflow   *Overflow
	Width      *Dimension
	Height     *Dimension
	MinWidth   *int
	MinHeight  *int
	MaxWidth   *int
	MaxHeight  *int
	Border     *Border
	Position   *Position
	ZIndex     *int
	Top        *int
	Right      *int
	Bottom     *int
	Left       *int
	Wrap       *WrapMode
	Gap        *int
	ShowScroll *bool

	JustifyContent *JustifyContent
	AlignItems     *AlignItems
	AlignSelf      *AlignSelf
}

// DefaultFocusStyle returns a ready-made focus style (a yellow single-line
// border) that a view can assign as a node's Focus style; focusable nodes
// do not receive it automatically.
func DefaultFocusStyle() Style {
	yellow := Yellow
	edges := EdgesAll
	return Style{
		Border: &Border{Enabled: true, Style: BorderSingle, Color: yellow, Edges: edges},
	}
}

// Merge overlays non-nil fields of overlay onto base, returning a new
// Style. Nil inputs behave as an empty style.
func Merge(base, overlay Style) Style {
	out := base
	if overlay.Background != nil {
		out.Background = overlay.Background
	}
	if overlay.Direction != nil {
		out.Direction = overlay.Direction
	}
	if overlay.Padding != nil {
		out.Padding = overlay.Padding
	}
	if overlay.Margin != nil {
		out.Margin = overlay.Margin
	}
	if overlay.Overflow != nil {
		out.Overflow = overlay.Overflow
	}
	if overlay.Width != nil {
		out.Width = overlay.Width
	}
	if overlay.Height != nil {
		out.Height = overlay.Height
	}
	if overlay.MinWidth != nil {
		out.MinWidth = overlay.MinWidth
	}
	if overlay.MinHeight != nil {
		out.MinHeight = overlay.MinHeight
	}
	if overlay.MaxWidth != nil {
		out.MaxWidth = overlay.MaxWidth
	}
	if overlay.MaxHeight != nil {
		out.MaxHeight = overlay.MaxHeight
	}
	if overlay.Border != nil {
		out.Border = overlay.Border
	}
	if overlay.Position != nil {
		out.Position = overlay.Position
	}
	if overlay.ZIndex != nil {
		out.ZIndex = overlay.ZIndex
	}
	if overlay.Top != nil {
		out.Top = overlay.Top
	}
	if overlay.Right != nil {
		out.Right = overlay.Right
	}
	if overlay.Bottom != nil {
		out.Bottom = overlay.Bottom
	}
	if overlay.Left != nil {
		out.Left = overlay.Left
	}
	if overlay.Wrap != nil {
		out.Wrap = overlay.Wrap
	}
	if overlay.Gap != nil {
		out.Gap = overlay.Gap
	}
	if overlay.ShowScroll != nil {
		out.ShowScroll = overlay.ShowScroll
	}
	if overlay.JustifyContent != nil {
		out.JustifyContent = overlay.JustifyContent
	}
	if overlay.AlignItems != nil {
		out.AlignItems = overlay.AlignItems
	}
	if overlay.AlignSelf != nil {
		out.AlignSelf = overlay.AlignSelf
	}
	return out
}

// TextAlign is horizontal text alignment within its box.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextWrap is how text breaks across lines.
type TextWrap int

const (
	WrapNone TextWrap = iota
	WrapCharacter
	WrapWord
	WrapWordBreak
)

// TextStyle is the style applied to a Text or Span.
type TextStyle struct {
	Color         *Color
	Background    *Color
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	Wrap          *TextWrap
	Align         *TextAlign
}

// MergeText overlays non-nil fields of overlay onto base.
func MergeText(base, overlay TextStyle) TextStyle {
	out := base
	if overlay.Color != nil {
		out.Color = overlay.Color
	}
	if overlay.Background != nil {
		out.Background = overlay.Background
	}
	if overlay.Bold != nil {
		out.Bold = overlay.Bold
	}
	if overlay.Italic != nil {
		out.Italic = overlay.Italic
	}
	if overlay.Underline != nil {
		out.Underline = overlay.Underline
	}
	if overlay.Strikethrough != nil {
		out.Strikethrough = overlay.Strikethrough
	}
	if overlay.Wrap != nil {
		out.Wrap = overlay.Wrap
	}
	if overlay.Align != nil {
		out.Align = overlay.Align
	}
	return out
}
