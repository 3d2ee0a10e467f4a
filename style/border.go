package style

// BorderStyle selects the character set used to draw a border.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderThick
	BorderRounded
)

// BorderEdges is a bitset of which edges/corners to draw.
type BorderEdges uint8

const (
	EdgeTop BorderEdges = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

const (
	EdgesAll     = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft | CornerTopLeft | CornerTopRight | CornerBottomRight | CornerBottomLeft
	EdgesSides   = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
	EdgesCorners = CornerTopLeft | CornerTopRight | CornerBottomRight | CornerBottomLeft
)

// Border describes whether and how a container's border is drawn.
type Border struct {
	Enabled bool
	Style   BorderStyle
	Color   Color
	Edges   BorderEdges
}

// BorderChars is indexed [style] and holds
// {TopLeft, TopRight, BottomRight, BottomLeft, Horizontal, Vertical}.
type BorderChars struct {
	TopLeft, TopRight, BottomRight, BottomLeft rune
	Horizontal, Vertical                       rune
}

var borderCharSets = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '┐', '┘', '└', '─', '│'},
	BorderDouble:  {'╔', '╗', '╝', '╚', '═', '║'},
	BorderThick:   {'┏', '┓', '┛', '┗', '━', '┃'},
	BorderRounded: {'╭', '╮', '╯', '╰', '─', '│'},
}

// Chars returns the character set for this border's style.
func (b Border) Chars() BorderChars {
	if cs, ok := borderCharSets[b.Style]; ok {
		return cs
	}
	return borderCharSets[BorderSingle]
}

func (e BorderEdges) Has(edge BorderEdges) bool { return e&edge != 0 }
