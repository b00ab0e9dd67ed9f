// Package render draws a session onto an immediate-mode 2D surface.
package render

import (
	"fmt"
	"hash/fnv"
	"image/color"

	"golang.org/x/image/colornames"

	"dinoshoot/entity"
	"dinoshoot/sim"
	"dinoshoot/ui"
)

type TextStyle struct {
	Size        float64
	Fill        color.Color
	Stroke      color.Color // nil for no outline
	StrokeWidth float64
}

// Surface is a drawing target in play-area coordinates. Text y is the baseline.
type Surface interface {
	Size() (w, h float64)
	Background(id string)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Text(s string, x, y float64, st TextStyle)
}

var (
	gold      = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	cyan      = color.RGBA{0x00, 0xFF, 0xFF, 0xFF}
	orangeRed = color.RGBA{0xFF, 0x45, 0x00, 0xFF}
	limeGreen = color.RGBA{0x32, 0xCD, 0x32, 0xFF}
)

var (
	headline = TextStyle{Size: 60, Stroke: color.Black, StrokeWidth: 4}
	subline  = TextStyle{Size: 40, Fill: cyan, Stroke: color.Black, StrokeWidth: 4}
	hud      = TextStyle{Size: 30, Fill: colornames.Red}
	label    = TextStyle{Size: 24, Fill: color.Black}
)

// Draw renders one frame: background, the field, then either the HUD or the
// overlay for a frozen phase, then the button.
func Draw(dst Surface, st *sim.State, btn ui.Button) {
	w, h := dst.Size()
	dst.Background(st.Background())

	drawTurret(dst, st.Player)
	for _, p := range st.Projectiles {
		dst.FillRect(p.Pos.X, p.Pos.Y, entity.ProjectileW, entity.ProjectileH, color.White)
	}
	for _, t := range st.Targets {
		dst.FillCircle(t.Pos.X, t.Pos.Y, entity.TargetR, t.Behavior.Color())
	}

	x := w / 4
	switch st.Phase {
	case sim.Playing:
		dst.Text(fmt.Sprintf("Score: %d", st.Score), 20, 40, hud)
		dst.Text(fmt.Sprintf("Level: %d", st.Level), 20, 80, hud)
		dst.Text("Bullets: "+st.Ammo.String(), 20, 120, hud)
	case sim.AwaitingNextLevel:
		dst.Text(fmt.Sprintf("Level %d Complete!", st.Level), x, h/2-50, withFill(headline, gold))
		dst.Text(`Click "Next Level" to continue.`, x, h/2, subline)
	case sim.GameOver:
		dst.Text("Out of Bullets! Game Over!", x, h/2, withFill(headline, orangeRed))
	case sim.GameCompleted:
		dst.Text("You finished all levels!", x, h/2-50, withFill(headline, limeGreen))
		dst.Text(`Click "Play Again" to restart.`, x, h/2, subline)
	}

	if btn.Visible {
		drawButton(dst, btn)
	}
}

func drawTurret(dst Surface, p entity.Player) {
	dst.FillRect(p.Pos.X, p.Pos.Y, entity.PlayerW, entity.PlayerH, colornames.Gray)
	dst.FillRect(p.Pos.X+entity.PlayerW/2-entity.BarrelW/2, p.Pos.Y-entity.BarrelH, entity.BarrelW, entity.BarrelH, color.Black)
}

func drawButton(dst Surface, b ui.Button) {
	dst.FillRect(b.X, b.Y, b.W, b.H, colornames.Lightgray)
	// rough centring; faces are not measured here
	tx := b.X + b.W/2 - float64(len(b.Label))*label.Size*0.28
	dst.Text(b.Label, tx, b.Y+b.H/2+label.Size/3, label)
}

func withFill(st TextStyle, c color.Color) TextStyle {
	st.Fill = c
	return st
}

var backdrops = []color.RGBA{
	{0x1B, 0x3A, 0x4B, 0xFF},
	{0x2D, 0x4A, 0x22, 0xFF},
	{0x4A, 0x2C, 0x2A, 0xFF},
	{0x3B, 0x2F, 0x5C, 0xFF},
	{0x5C, 0x4B, 0x1F, 0xFF},
}

// FallbackColor is the solid fill used when a background image is unavailable.
func FallbackColor(id string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(id))
	return backdrops[h.Sum32()%uint32(len(backdrops))]
}
