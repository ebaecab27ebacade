package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// EntityKind identifies what an Entity draw represents.
type EntityKind int

const (
	KindBrick EntityKind = iota
	KindPaddle
	KindBall
)

// Shape is the silhouette a Display should use for an entity.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Entity is a draw/update call for one game object, in arena units.
// Index is the brick index for bricks and 0 otherwise.
type Entity struct {
	Kind    EntityKind
	Index   int
	Center  core.Vec
	Size    core.Vec
	Shape   Shape
	Color   core.Color
	Visible bool
}

// TextStyle selects the typographic role of a text draw.
type TextStyle int

const (
	TextHUD      TextStyle = iota // Score and lives line
	TextBanner                    // GAME OVER / YOU WIN!
	TextSubtitle                  // Final score under the banner
)

// Text is a text draw centered horizontally on Pos, in arena units.
type Text struct {
	Pos   core.Vec
	Body  string
	Style TextStyle
	Color core.Color
}

// Display is the sink a Game renders into.
// Draw calls describe the next frame; nothing becomes visible until Present.
type Display interface {
	DrawEntity(e Entity)
	DrawText(t Text)
	Present()
}

// NopDisplay discards every draw. Used by headless runs.
type NopDisplay struct{}

func (NopDisplay) DrawEntity(Entity) {}
func (NopDisplay) DrawText(Text)     {}
func (NopDisplay) Present()          {}
