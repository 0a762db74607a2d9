package render

import (
	"image/color"
	"testing"

	"stochlife/internal/core/coretest"
	"stochlife/internal/engine/sparse"
)

type call struct {
	op        string
	rect      Rect
	thickness float64
	color     color.Color
}

type recorder struct {
	calls []call
}

func (r *recorder) Clear(c color.Color) { r.calls = append(r.calls, call{op: "clear", color: c}) }

func (r *recorder) FillRect(rect Rect, c color.Color) {
	r.calls = append(r.calls, call{op: "fill", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect Rect, th float64, c color.Color) {
	r.calls = append(r.calls, call{op: "stroke", rect: rect, thickness: th, color: c})
}

func TestPaintOrder(t *testing.T) {
	g := sparse.New(2, 3, 10, coretest.Never())
	g.Toggle(1, 2)

	rec := &recorder{}
	p := NewPainter()
	p.Paint(rec, g)

	// clear + (fill + stroke) per cell + one fill per live cell
	if want := 1 + 2*6 + 1; len(rec.calls) != want {
		t.Fatalf("got %d draw calls, expected %d", len(rec.calls), want)
	}
	if rec.calls[0].op != "clear" || rec.calls[0].color != p.Palette.Background {
		t.Fatalf("first call %+v, expected a background clear", rec.calls[0])
	}
	for i := 1; i < 13; i += 2 {
		if rec.calls[i].op != "fill" || rec.calls[i].color != p.Palette.Dead {
			t.Fatalf("call %d = %+v, expected a dead fill", i, rec.calls[i])
		}
		if rec.calls[i+1].op != "stroke" || rec.calls[i+1].thickness != OutlineThickness {
			t.Fatalf("call %d = %+v, expected an outline", i+1, rec.calls[i+1])
		}
	}

	last := rec.calls[len(rec.calls)-1]
	want := Rect{CX: 25, CY: 15, W: 10, H: 10}
	if last.op != "fill" || last.color != p.Palette.Live || last.rect != want {
		t.Fatalf("live cell drawn as %+v, expected fill %+v", last, want)
	}
}

func TestCellRectAxes(t *testing.T) {
	r := CellRect(3, 1, 8)
	x, y := r.Min()
	if x != 8 || y != 24 {
		t.Fatalf("min corner (%v,%v), expected (8,24): columns map to x, rows to y", x, y)
	}
}

func TestRGBA8(t *testing.T) {
	r, g, b, a := RGBA8(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if r != 1 || g != 2 || b != 3 || a != 255 {
		t.Fatalf("RGBA8 = %d,%d,%d,%d", r, g, b, a)
	}
}
