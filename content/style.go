package content

import "fmt"

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase "RRGGBB" string (no leading '#'),
// which is the form OOXML attributes expect.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return "#" + c.Hex()
}

// Alignment specifies horizontal text alignment of a block.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Highlight is a text marker color. Word processors support only a small
// fixed palette here, distinct from arbitrary background shading.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightYellow
	HighlightRed
	HighlightBrightGreen
	HighlightBlue
	HighlightPink
	HighlightTurquoise
	HighlightOrange
)

func (h Highlight) String() string {
	switch h {
	case HighlightYellow:
		return "yellow"
	case HighlightRed:
		return "red"
	case HighlightBrightGreen:
		return "bright-green"
	case HighlightBlue:
		return "blue"
	case HighlightPink:
		return "pink"
	case HighlightTurquoise:
		return "turquoise"
	case HighlightOrange:
		return "orange"
	default:
		return "none"
	}
}

// StyleState is the resolved text style at one point of the markup tree.
//
// It is a plain value: descending into a child node copies the parent state
// and overrides only the fields the child declares, so sibling subtrees can
// never observe each other's changes. Zero values mean "inherit the global
// document default" - the base font name and size are never written into a
// node state, they live in the writer configuration only.
type StyleState struct {
	Bold       bool
	Italic     bool
	Underline  bool
	FontSize   float64 // points, 0 = document default
	Color      *RGB    // nil = document default
	FontFamily string  // "" = document default
	LineHeight float64 // multiplier, 0 = document default
	Highlight  Highlight
	Background *RGB // nil = no shading
}

// WithColor returns a copy of the state with the text color overridden.
func (s StyleState) WithColor(c RGB) StyleState {
	s.Color = &c
	return s
}

// WithBackground returns a copy of the state with the background overridden.
func (s StyleState) WithBackground(c RGB) StyleState {
	s.Background = &c
	return s
}
