//go:build ebiten

package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"

	"stochlife/internal/app"
	"stochlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a Session to the ebiten.Game interface. Update drains input
// and advances, Draw repaints; ebiten always calls them in that order.
type Game struct {
	session *app.Session
	hud     bool

	events []app.Event
	keys   []ebiten.Key
}

// NewGame constructs a Game for the provided session.
func NewGame(s *app.Session, hud bool) *Game {
	return &Game{session: s, hud: hud}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if !g.session.Alive() {
		return ebiten.Termination
	}
	g.events = g.collect(g.events[:0])
	for _, ev := range g.events {
		g.session.Handle(ev)
	}
	g.session.Tick()
	return nil
}

func (g *Game) collect(evs []app.Event) []app.Event {
	if ebiten.IsWindowBeingClosed() {
		evs = append(evs, app.Closed{})
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		evs = append(evs, app.KeyPressed{Key: mapKey(k)})
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if !inpututil.IsMouseButtonJustPressed(b) {
			continue
		}
		// CursorPosition is already in layout coordinates.
		x, y := ebiten.CursorPosition()
		evs = append(evs, app.MousePressed{Button: mapButton(b), X: float64(x), Y: float64(y)})
	}
	return evs
}

func mapKey(k ebiten.Key) app.Key {
	switch k {
	case ebiten.KeyEscape:
		return app.KeyEscape
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return app.KeyEnter
	}
	return app.KeyOther
}

func mapButton(b ebiten.MouseButton) app.Button {
	switch b {
	case ebiten.MouseButtonLeft:
		return app.ButtonPrimary
	case ebiten.MouseButtonRight:
		return app.ButtonSecondary
	}
	return app.ButtonOther
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Paint(surface{dst: screen})
	if g.hud {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "running"
	if g.session.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  live %d  %s", g.session.Generation(), g.session.Engine().Len(), state)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.RGBA{R: 255, G: 200, B: 60, A: 255})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.WindowSize()
}

type surface struct {
	dst *ebiten.Image
}

func (s surface) Clear(c color.Color) { s.dst.Fill(c) }

func (s surface) FillRect(r render.Rect, c color.Color) {
	x, y := r.Min()
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(r.W), float32(r.H), c, false)
}

func (s surface) StrokeRect(r render.Rect, thickness float64, c color.Color) {
	x, y := r.Min()
	half := thickness / 2
	vector.StrokeRect(s.dst, float32(x+half), float32(y+half), float32(r.W-thickness), float32(r.H-thickness), float32(thickness), c, false)
}

// Host opens an ebiten window sized to the grid.
type Host struct {
	Title string
	HUD   bool
}

// Run blocks until the session stops or the window fails.
func (h *Host) Run(s *app.Session) error {
	w, hgt := s.WindowSize()
	ebiten.SetWindowTitle(h.Title)
	ebiten.SetWindowSize(w, hgt)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(s, h.HUD)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

func init() {
	app.RegisterHost("ebiten", func(cfg *app.Config) (app.Host, error) {
		return &Host{Title: "stochlife", HUD: cfg.HUD}, nil
	})
}
