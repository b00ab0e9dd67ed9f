package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll fills r from ebiten's input state. Call once per Update.
func Poll(r *Raw) {
	x, y := ebiten.CursorPosition()
	r.Cursor = Point{float64(x), float64(y)}
	r.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	r.Touches = r.Touches[:0]
	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		r.Touches = append(r.Touches, Point{float64(tx), float64(ty)})
	}
	r.TouchStarted = r.TouchStarted[:0]
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		r.TouchStarted = append(r.TouchStarted, Point{float64(tx), float64(ty)})
	}

	r.FireKey = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	r.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter)
}
