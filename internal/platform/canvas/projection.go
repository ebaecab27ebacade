// Package canvas sits between the simulation's Display contract and the
// concrete drivers. It maps arena coordinates onto a drawing surface and
// double-buffers draw calls so a driver can repaint the last complete frame
// at its own pace.
package canvas

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Projection maps arena coordinates (origin at the center, y up) onto a
// surface (origin at the top-left, y down). Axes scale independently so a
// terminal grid with tall cells still shows the whole arena.
type Projection struct {
	ArenaW, ArenaH     float64
	SurfaceW, SurfaceH float64
}

// NewProjection creates a projection from an arena to a surface.
func NewProjection(arenaW, arenaH, surfaceW, surfaceH float64) Projection {
	return Projection{ArenaW: arenaW, ArenaH: arenaH, SurfaceW: surfaceW, SurfaceH: surfaceH}
}

// ScaleX returns surface units per arena unit horizontally.
func (p Projection) ScaleX() float64 { return p.SurfaceW / p.ArenaW }

// ScaleY returns surface units per arena unit vertically.
func (p Projection) ScaleY() float64 { return p.SurfaceH / p.ArenaH }

// Point maps an arena point to surface coordinates.
func (p Projection) Point(v core.Vec) (x, y float64) {
	x = (v.X + p.ArenaW/2) * p.ScaleX()
	y = (p.ArenaH/2 - v.Y) * p.ScaleY()
	return x, y
}

// Size maps an arena extent to surface units.
func (p Projection) Size(s core.Vec) (w, h float64) {
	return s.X * p.ScaleX(), s.Y * p.ScaleY()
}

// Rect maps a centered arena box to a surface rectangle given by its
// top-left corner and size.
func (p Projection) Rect(center, size core.Vec) (x, y, w, h float64) {
	cx, cy := p.Point(center)
	w, h = p.Size(size)
	return cx - w/2, cy - h/2, w, h
}

// Cell maps an arena point to the grid cell that contains it.
func (p Projection) Cell(v core.Vec) (col, row int) {
	x, y := p.Point(v)
	return int(math.Floor(x)), int(math.Floor(y))
}

// CellRect maps a centered arena box to grid cells. Every visible box
// covers at least one cell.
func (p Projection) CellRect(center, size core.Vec) core.Rect {
	x, y, w, h := p.Rect(center, size)
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
