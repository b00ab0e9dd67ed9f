// Package ui has the single on-screen button used for retry / next level / play again.
package ui

const (
	ButtonW = 140.0
	ButtonH = 44.0
)

// Button is reused for every affordance; only its label and visibility change.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	Visible bool
}

// Show places the button just below the centre of a w x h surface.
func (b *Button) Show(label string, w, h float64) {
	b.Label = label
	b.X = w/2 - ButtonW/2
	b.Y = h/2 + 60
	b.W = ButtonW
	b.H = ButtonH
	b.Visible = true
}

func (b *Button) Hide() { b.Visible = false }

// Contains reports whether (x, y) is on a visible button.
func (b Button) Contains(x, y float64) bool {
	return b.Visible && x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}
