package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/canvas"
)

// Glyphs used to draw entities.
const (
	glyphBrick  = '█'
	glyphPaddle = '▀'
	glyphBall   = '●'
)

var borderStyle = core.Style{Fg: core.ColorGray}

// Paint draws a presented frame onto the screen: an arena border, then the
// entities and texts projected into the area inside it.
func Paint(s *core.Screen, f canvas.Frame, arena core.Vec) {
	s.Clear()
	if s.Width() < 3 || s.Height() < 3 {
		return
	}

	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), borderStyle)
	proj := canvas.NewProjection(arena.X, arena.Y, float64(s.Width()-2), float64(s.Height()-2))

	for _, e := range f.Entities {
		if !e.Visible {
			continue
		}
		paintEntity(s, proj, e)
	}
	for _, t := range f.Texts {
		paintText(s, proj, t)
	}
}

func paintEntity(s *core.Screen, proj canvas.Projection, e breakout.Entity) {
	switch e.Shape {
	case breakout.ShapeCircle:
		col, row := proj.Cell(e.Center)
		s.SetCell(col+1, row+1, core.Cell{Rune: glyphBall, Fg: e.Color, Bold: true})
	default:
		glyph := glyphBrick
		if e.Kind == breakout.KindPaddle {
			glyph = glyphPaddle
		}
		r := proj.CellRect(e.Center, e.Size)
		r.X++
		r.Y++
		s.FillRect(clip(r, s), core.Cell{Rune: glyph, Fg: e.Color})
	}
}

// clip keeps a rectangle off the border.
func clip(r core.Rect, s *core.Screen) core.Rect {
	x0 := core.Clamp(r.X, 1, s.Width()-1)
	y0 := core.Clamp(r.Y, 1, s.Height()-1)
	x1 := core.Clamp(r.Right(), 1, s.Width()-1)
	y1 := core.Clamp(r.Bottom(), 1, s.Height()-1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func paintText(s *core.Screen, proj canvas.Projection, t breakout.Text) {
	col, row := proj.Cell(t.Pos)
	x := col + 1 - utf8.RuneCountInString(t.Body)/2
	st := core.Style{Fg: t.Color, Bold: t.Style != breakout.TextHUD}
	s.DrawStyledText(max(x, 1), core.Clamp(row+1, 1, s.Height()-2), t.Body, st)
}
