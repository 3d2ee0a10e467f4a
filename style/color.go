// Package style defines the node-level style vocabulary (§3 Style/TextStyle
// in the spec): colors, spacing, dimensions, borders, and the layout knobs
// the layout engine and draw pipeline consume. It is deliberately a level
// above backend.Style, which only knows about terminal cells.
package style

import "github.com/zerocore-ai/rxtui/backend"

// Color is a 16-color palette entry or an RGB triple.
type Color struct {
	rgb     bool
	palette backend.Color
	r, g, b uint8
}

var (
	Black         = Color{palette: backend.ColorBlack}
	Red           = Color{palette: backend.ColorRed}
	Green         = Color{palette: backend.ColorGreen}
	Yellow        = Color{palette: backend.ColorYellow}
	Blue          = Color{palette: backend.ColorBlue}
	Magenta       = Color{palette: backend.ColorMagenta}
	Cyan          = Color{palette: backend.ColorCyan}
	White         = Color{palette: backend.ColorWhite}
	BrightBlack   = Color{palette: backend.ColorBrightBlack}
	BrightRed     = Color{palette: backend.ColorBrightRed}
	BrightGreen   = Color{palette: backend.ColorBrightGreen}
	BrightYellow  = Color{palette: backend.ColorBrightYellow}
	BrightBlue    = Color{palette: backend.ColorBrightBlue}
	BrightMagenta = Color{palette: backend.ColorBrightMagenta}
	BrightCyan    = Color{palette: backend.ColorBrightCyan}
	BrightWhite   = Color{palette: backend.ColorBrightWhite}
)

// RGB builds a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{rgb: true, r: r, g: g, b: b}
}

// Cell converts a node-level Color to the cell-level backend.Color.
func (c Color) Cell() backend.Color {
	if c.rgb {
		return backend.ColorRGB(c.r, c.g, c.b)
	}
	return c.palette
}

func (c Color) Equal(o Color) bool {
	return c.rgb == o.rgb && c.palette == o.palette && c.r == o.r && c.g == o.g && c.b == o.b
}
