// Package termhost runs a session inside a terminal. Each grid cell is two
// terminal columns wide and one row high; mouse reporting drives toggles.
package termhost

import (
	"fmt"
	"image/color"
	"math"

	"stochlife/internal/app"
	"stochlife/internal/core"
	"stochlife/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Window adapts a tcell screen to app.Window. Surface coordinates are the
// session's pixel coordinates; the window folds them back onto terminal cells.
type Window struct {
	screen  tcell.Screen
	scale   float64
	pacer   *core.Pacer
	buttons tcell.ButtonMask
}

// NewWindow initialises screen for drawing a grid at the given scale.
func NewWindow(screen tcell.Screen, scale float64, fps int) (*Window, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("termhost: scale must be positive, got %v", scale)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termhost: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return &Window{screen: screen, scale: scale, pacer: core.NewPacer(fps)}, nil
}

// Close restores the terminal.
func (w *Window) Close() {
	w.screen.Fini()
}

// PollEvent returns queued input without blocking.
func (w *Window) PollEvent() (app.Event, bool) {
	for w.screen.HasPendingEvent() {
		if e, ok := w.translate(w.screen.PollEvent()); ok {
			return e, true
		}
	}
	return nil, false
}

func (w *Window) translate(ev tcell.Event) (app.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return app.KeyPressed{Key: app.KeyEscape}, true
		case tcell.KeyEnter:
			return app.KeyPressed{Key: app.KeyEnter}, true
		}
		return app.KeyPressed{Key: app.KeyOther}, true

	case *tcell.EventMouse:
		// tcell reports button state, not transitions.
		held := ev.Buttons()
		pressed := held &^ w.buttons
		w.buttons = held
		var b app.Button
		switch {
		case pressed&tcell.ButtonPrimary != 0:
			b = app.ButtonPrimary
		case pressed&tcell.ButtonSecondary != 0:
			b = app.ButtonSecondary
		case pressed&(tcell.ButtonMiddle|tcell.Button4|tcell.Button5|tcell.Button6|tcell.Button7|tcell.Button8) != 0:
			b = app.ButtonOther
		default:
			return nil, false
		}
		x, y := ev.Position()
		return app.MousePressed{
			Button: b,
			X:      (float64(x/2) + 0.5) * w.scale,
			Y:      (float64(y) + 0.5) * w.scale,
		}, true

	case *tcell.EventResize:
		w.screen.Sync()
	}
	return nil, false
}

func style(c color.Color) tcell.Style {
	r, g, b, _ := render.RGBA8(c)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Clear fills the terminal with c.
func (w *Window) Clear(c color.Color) {
	w.screen.Fill(' ', style(c))
}

// FillRect paints every grid cell r covers.
func (w *Window) FillRect(r render.Rect, c color.Color) {
	st := style(c)
	x, y := r.Min()
	// Shrink by a hair so a rect ending exactly on a cell edge stays put.
	const eps = 1e-9
	c0, c1 := int(math.Floor(x/w.scale+eps)), int(math.Ceil((x+r.W)/w.scale-eps))
	r0, r1 := int(math.Floor(y/w.scale+eps)), int(math.Ceil((y+r.H)/w.scale-eps))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			w.screen.SetContent(col*2, row, ' ', nil, st)
			w.screen.SetContent(col*2+1, row, ' ', nil, st)
		}
	}
}

// StrokeRect is a no-op: a terminal cell has no room for an outline.
func (w *Window) StrokeRect(render.Rect, float64, color.Color) {}

// Present shows the frame and waits for the next frame slot.
func (w *Window) Present() error {
	w.screen.Show()
	w.pacer.Wait()
	return nil
}

// Host runs the session on the process's terminal.
type Host struct {
	FPS int

	newScreen func() (tcell.Screen, error)
}

// Run blocks until the session stops.
func (h *Host) Run(s *app.Session) error {
	newScreen := h.newScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("termhost: %w", err)
	}
	w, err := NewWindow(screen, s.Engine().Scale(), h.FPS)
	if err != nil {
		return err
	}
	defer w.Close()
	return app.Drive(s, w)
}

func init() {
	app.RegisterHost("term", func(cfg *app.Config) (app.Host, error) {
		return &Host{FPS: cfg.FPS}, nil
	})
}
