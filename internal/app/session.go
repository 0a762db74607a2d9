package app

import (
	"math"

	"stochlife/internal/core"
	"stochlife/internal/render"
)

// Session is the presentation loop state wrapped around one engine. It is
// owned by a single goroutine.
type Session struct {
	engine  core.Engine
	painter *render.Painter

	alive      bool
	paused     bool
	generation int
}

// NewSession returns a running, paused session for e.
func NewSession(e core.Engine) *Session {
	return &Session{
		engine:  e,
		painter: render.NewPainter(),
		alive:   true,
		paused:  true,
	}
}

// Engine returns the wrapped engine.
func (s *Session) Engine() core.Engine { return s.engine }

// Alive reports whether the loop should keep running.
func (s *Session) Alive() bool { return s.alive }

// Paused reports whether Tick is currently a no-op.
func (s *Session) Paused() bool { return s.paused }

// Generation counts the advances performed so far.
func (s *Session) Generation() int { return s.generation }

// Quit stops the loop at the start of the next frame.
func (s *Session) Quit() { s.alive = false }

// Handle applies one input event.
func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case Closed:
		s.alive = false
	case KeyPressed:
		switch ev.Key {
		case KeyEscape:
			s.alive = false
		case KeyEnter:
			s.paused = !s.paused
		}
	case MousePressed:
		if ev.Button != ButtonPrimary || !s.paused {
			return
		}
		if row, col, ok := s.CellAt(ev.X, ev.Y); ok {
			s.engine.Toggle(row, col)
		}
	}
}

// CellAt maps surface coordinates to a cell. Screen y selects the row and
// screen x the column.
func (s *Session) CellAt(x, y float64) (row, col int, ok bool) {
	scale := s.engine.Scale()
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row = int(math.Floor(y / scale))
	col = int(math.Floor(x / scale))
	if row >= s.engine.Rows() || col >= s.engine.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

// Tick advances the engine once unless paused. It reports whether it did.
func (s *Session) Tick() bool {
	if s.paused {
		return false
	}
	s.engine.Advance()
	s.generation++
	return true
}

// WindowSize returns the pixel size of the drawn grid, width first. Both
// dimensions are at least one pixel.
func (s *Session) WindowSize() (int, int) {
	w := int(math.Ceil(float64(s.engine.Cols()) * s.engine.Scale()))
	h := int(math.Ceil(float64(s.engine.Rows()) * s.engine.Scale()))
	return max(w, 1), max(h, 1)
}

// Paint repaints the whole grid onto surf.
func (s *Session) Paint(surf render.Surface) {
	s.painter.Paint(surf, s.engine)
}
