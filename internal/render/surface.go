package render

import "image/color"

// Rect is an axis-aligned rectangle positioned by its centre.
type Rect struct {
	CX, CY float64
	W, H   float64
}

// Min returns the top-left corner.
func (r Rect) Min() (float64, float64) {
	return r.CX - r.W/2, r.CY - r.H/2
}

// Surface accepts the primitive draw calls a frame is built from.
type Surface interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	// StrokeRect outlines r with a border of the given thickness drawn
	// inside its bounds.
	StrokeRect(r Rect, thickness float64, c color.Color)
}

// Palette selects the colours used to paint a frame.
type Palette struct {
	Background color.Color
	Dead       color.Color
	Outline    color.Color
	Live       color.Color
}

// DefaultPalette draws dark cells separated by black gaps and live cells in
// white.
func DefaultPalette() Palette {
	return Palette{
		Background: color.Black,
		Dead:       color.RGBA{R: 28, G: 28, B: 34, A: 255},
		Outline:    color.Black,
		Live:       color.White,
	}
}

// RGBA8 converts c into 8-bit straight channels.
func RGBA8(c color.Color) (r, g, b, a uint8) {
	nr, ng, nb, na := c.RGBA()
	return uint8(nr >> 8), uint8(ng >> 8), uint8(nb >> 8), uint8(na >> 8)
}
