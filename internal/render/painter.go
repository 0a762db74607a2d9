package render

import "stochlife/internal/core"

// OutlineThickness is the width of the gap drawn around each cell.
const OutlineThickness = 2

// Painter translates an engine's state into Surface draw calls.
type Painter struct {
	Palette Palette
}

// NewPainter returns a Painter using the default palette.
func NewPainter() *Painter {
	return &Painter{Palette: DefaultPalette()}
}

// CellRect returns the rectangle covering (row, col) at the given scale.
func CellRect(row, col int, scale float64) Rect {
	return Rect{
		CX: (float64(col) + 0.5) * scale,
		CY: (float64(row) + 0.5) * scale,
		W:  scale,
		H:  scale,
	}
}

// Paint clears s, draws the background lattice and then every live cell.
func (p *Painter) Paint(s Surface, e core.Engine) {
	scale := e.Scale()
	s.Clear(p.Palette.Background)
	for row := 0; row < e.Rows(); row++ {
		for col := 0; col < e.Cols(); col++ {
			r := CellRect(row, col, scale)
			s.FillRect(r, p.Palette.Dead)
			s.StrokeRect(r, OutlineThickness, p.Palette.Outline)
		}
	}
	e.LiveCells(func(c core.Cell) bool {
		s.FillRect(CellRect(c.Row, c.Col, scale), p.Palette.Live)
		return true
	})
}
