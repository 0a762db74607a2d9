//go:build sdl

package sdlhost

import (
	"fmt"
	"image/color"
	"math"
	"runtime"

	"stochlife/internal/app"
	"stochlife/internal/core"
	"stochlife/internal/render"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL wants every call on the thread that initialised it.
func init() {
	runtime.LockOSThread()
}

// Window is a pull-style SDL window. Draw errors are remembered and reported
// by the next Present.
type Window struct {
	win   *sdl.Window
	ren   *sdl.Renderer
	pacer *core.Pacer
	err   error
}

// Open creates a window of the given pixel size with a vsynced renderer.
func Open(title string, width, height, fps int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	ren, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &Window{win: win, ren: ren, pacer: core.NewPacer(fps)}, nil
}

// Close releases the renderer and window.
func (w *Window) Close() {
	w.ren.Destroy()
	w.win.Destroy()
	sdl.Quit()
}

// PollEvent drains SDL's queue until it finds an event the loop understands.
func (w *Window) PollEvent() (app.Event, bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := translate(ev); ok {
			return e, true
		}
	}
	return nil, false
}

func translate(ev sdl.Event) (app.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return app.Closed{}, true

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			return app.Closed{}, true
		}

	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
			return nil, false
		}
		switch ev.Keysym.Sym {
		case sdl.K_ESCAPE:
			return app.KeyPressed{Key: app.KeyEscape}, true
		case sdl.K_RETURN, sdl.K_KP_ENTER:
			return app.KeyPressed{Key: app.KeyEnter}, true
		}
		return app.KeyPressed{Key: app.KeyOther}, true

	case *sdl.MouseButtonEvent:
		if ev.Type != sdl.MOUSEBUTTONDOWN {
			return nil, false
		}
		b := app.ButtonOther
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			b = app.ButtonPrimary
		case sdl.BUTTON_RIGHT:
			b = app.ButtonSecondary
		}
		return app.MousePressed{Button: b, X: float64(ev.X), Y: float64(ev.Y)}, true
	}
	return nil, false
}

func (w *Window) setColor(c color.Color) {
	r, g, b, a := render.RGBA8(c)
	w.keep(w.ren.SetDrawColor(r, g, b, a))
}

func (w *Window) keep(err error) {
	if err != nil && w.err == nil {
		w.err = err
	}
}

// Clear fills the frame with c.
func (w *Window) Clear(c color.Color) {
	w.setColor(c)
	w.keep(w.ren.Clear())
}

// FillRect draws a solid rectangle.
func (w *Window) FillRect(r render.Rect, c color.Color) {
	x, y := r.Min()
	w.setColor(c)
	w.keep(w.ren.FillRectF(&sdl.FRect{X: float32(x), Y: float32(y), W: float32(r.W), H: float32(r.H)}))
}

// StrokeRect draws four bands of the given thickness inside r.
func (w *Window) StrokeRect(r render.Rect, thickness float64, c color.Color) {
	x, y := r.Min()
	t := math.Min(thickness, math.Min(r.W, r.H)/2)
	w.setColor(c)
	bands := []sdl.FRect{
		{X: float32(x), Y: float32(y), W: float32(r.W), H: float32(t)},
		{X: float32(x), Y: float32(y + r.H - t), W: float32(r.W), H: float32(t)},
		{X: float32(x), Y: float32(y + t), W: float32(t), H: float32(r.H - 2*t)},
		{X: float32(x + r.W - t), Y: float32(y + t), W: float32(t), H: float32(r.H - 2*t)},
	}
	w.keep(w.ren.FillRectsF(bands))
}

// Present shows the frame and reports the first draw error since the last
// frame.
func (w *Window) Present() error {
	if err := w.err; err != nil {
		w.err = nil
		return fmt.Errorf("sdl: %w", err)
	}
	w.ren.Present()
	w.pacer.Wait()
	return nil
}

// Host opens an SDL window sized to the grid.
type Host struct {
	Title string
	FPS   int
}

// Run blocks until the session stops or the window fails.
func (h *Host) Run(s *app.Session) error {
	width, height := s.WindowSize()
	w, err := Open(h.Title, width, height, h.FPS)
	if err != nil {
		return err
	}
	defer w.Close()
	return app.Drive(s, w)
}

func init() {
	app.RegisterHost("sdl", func(cfg *app.Config) (app.Host, error) {
		// vsync already paces the renderer; the cap only matters without it.
		return &Host{Title: "stochlife", FPS: cfg.FPS}, nil
	})
}
