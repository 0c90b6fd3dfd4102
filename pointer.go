package folderdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput is the per-tick pointer snapshot the world consumes.
// Position is in raw screen pixels, origin at the viewport's top-left corner.
type PointerInput struct {
	Position       Vec2
	OnScreen       bool // false when the cursor is outside the viewport; the tick then makes no transitions
	ViewportWidth  float64
	ViewportHeight float64
	JustPressed    bool // primary button went down this tick
	Held           bool // primary button is down
}

// ReadPointer polls ebiten for the left mouse button and cursor. Call it from
// ebiten.Game.Update with the size returned by Layout.
func ReadPointer(viewportWidth, viewportHeight int) PointerInput {
	mx, my := ebiten.CursorPosition()
	return PointerInput{
		Position:       Vec2{float64(mx), float64(my)},
		OnScreen:       mx >= 0 && my >= 0 && mx < viewportWidth && my < viewportHeight,
		ViewportWidth:  float64(viewportWidth),
		ViewportHeight: float64(viewportHeight),
		JustPressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Held:           ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
