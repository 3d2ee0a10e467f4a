package style

import "github.com/zerocore-ai/rxtui/backend"

// ToBackend bridges a node-level TextStyle to the cell-level backend.Style
// that the cell buffer and terminal backend exchange (§3: node Style vs.
// the lower Cell style).
func ToBackend(t TextStyle) backend.Style {
	s := backend.DefaultStyle()
	if t.Color != nil {
		s = s.Foreground(t.Color.Cell())
	}
	if t.Background != nil {
		s = s.Background(t.Background.Cell())
	}
	if t.Bold != nil {
		s = s.Bold(*t.Bold)
	}
	if t.Italic != nil {
		s = s.Italic(*t.Italic)
	}
	if t.Underline != nil {
		s = s.Underline(*t.Underline)
	}
	if t.Strikethrough != nil {
		s = s.StrikeThrough(*t.Strikethrough)
	}
	return s
}

// BackgroundCell bridges a container Style's background + border color into
// plain backend.Style fills for the draw pipeline.
func BackgroundCell(background *Color) backend.Style {
	s := backend.DefaultStyle()
	if background != nil {
		s = s.Background(background.Cell())
	}
	return s
}
