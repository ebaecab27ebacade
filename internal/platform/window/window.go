// Package window runs the game in a desktop window with Ebiten.
package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/canvas"
)

// Font sizes per text style, in arena units.
const (
	hudSize      = 18
	bannerSize   = 36
	subtitleSize = 24
)

var background = color.RGBA{A: 0xff}

// binding maps physical keys to one action.
type binding struct {
	keys   []ebiten.Key
	action core.Action
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: core.ActionLeft},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: core.ActionRight},
}

// Game adapts a breakout session to ebiten.Game. Update applies held keys
// and runs due frames; Draw replays the last presented frame.
type Game struct {
	loop   *breakout.Loop
	list   *canvas.DisplayList
	pacer  *canvas.Pacer
	repeat canvas.KeyRepeat
	proj   canvas.Projection
	faces  map[breakout.TextStyle]*text.GoTextFace
	width  int
	height int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps game for Ebiten. Fonts are loaded from the embedded Go
// font family.
func NewGame(game *breakout.Game, opts ...breakout.LoopOption) (*Game, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load mono font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load bold font: %w", err)
	}

	arena := game.Config().Arena
	list := canvas.NewDisplayList()
	loop := breakout.NewLoop(game, list, opts...)
	loop.Draw()

	return &Game{
		loop:   loop,
		list:   list,
		pacer:  canvas.NewPacer(loop, nil),
		repeat: canvas.DefaultKeyRepeat,
		proj:   canvas.NewProjection(arena.Width, arena.Height, arena.Width, arena.Height),
		faces: map[breakout.TextStyle]*text.GoTextFace{
			breakout.TextHUD:      {Source: regular, Size: hudSize},
			breakout.TextBanner:   {Source: bold, Size: bannerSize},
			breakout.TextSubtitle: {Source: bold, Size: subtitleSize},
		},
		width:  int(arena.Width),
		height: int(arena.Height),
	}, nil
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, b := range bindings {
		if g.fired(b.keys) {
			g.loop.Game().Apply(b.action)
		}
	}

	g.pacer.Advance()
	return nil
}

func (g *Game) fired(keys []ebiten.Key) bool {
	for _, k := range keys {
		if g.repeat.Fire(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	f := g.list.Front()
	for _, e := range f.Entities {
		if !e.Visible {
			continue
		}
		g.drawEntity(screen, e)
	}
	for _, t := range f.Texts {
		g.drawText(screen, t)
	}
}

func (g *Game) drawEntity(screen *ebiten.Image, e breakout.Entity) {
	clr := rgba(e.Color)
	switch e.Shape {
	case breakout.ShapeCircle:
		cx, cy := g.proj.Point(e.Center)
		w, _ := g.proj.Size(e.Size)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(w/2), clr, true)
	default:
		x, y, w, h := g.proj.Rect(e.Center, e.Size)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
	}
}

func (g *Game) drawText(screen *ebiten.Image, t breakout.Text) {
	face, ok := g.faces[t.Style]
	if !ok {
		face = g.faces[breakout.TextHUD]
	}

	x, y := g.proj.Point(t.Pos)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(t.Color))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, t.Body, face, op)
}

// Layout keeps the logical screen at arena size; Ebiten scales it to the
// window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Phase returns the game phase as of the last frame.
func (g *Game) Phase() breakout.Phase {
	return g.pacer.Last().Phase
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Run opens a window and plays game until the window is closed or Esc is
// pressed. It returns the phase the game reached.
func Run(game *breakout.Game, opts ...breakout.LoopOption) (breakout.Phase, error) {
	g, err := NewGame(game, opts...)
	if err != nil {
		return game.Phase(), err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return g.Phase(), fmt.Errorf("window: %w", err)
	}
	return g.Phase(), nil
}
