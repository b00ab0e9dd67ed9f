package entity

import "math"

const (
	PlayerW = 50.0
	PlayerH = 20.0

	// barrel sits on top of the body
	BarrelW = 10.0
	BarrelH = 20.0

	ProjectileW     = 5.0
	ProjectileH     = 10.0
	ProjectileSpeed = 7.0 // px per tick, upward

	TargetR = 20.0
	// targets turn around this far from either side
	EdgeMargin = 20.0
)

type Vec struct{ X, Y float64 }

func Dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

type Player struct {
	Pos Vec // top-left of the body
}

// NewPlayer centres the turret along the bottom of a w x h play area.
func NewPlayer(w, h float64) Player {
	return Player{Pos: Vec{X: w/2 - PlayerW/2, Y: h - 50}}
}

// Track moves the player so its centre follows pointer x. No clamping.
func (p *Player) Track(x float64) {
	p.Pos.X = x - PlayerW/2
}

// Muzzle is where new projectiles appear.
func (p Player) Muzzle() Vec {
	return Vec{X: p.Pos.X + PlayerW/2 - ProjectileW/2, Y: p.Pos.Y - BarrelH}
}

type Projectile struct {
	Pos Vec
}

// Advance moves the projectile up one tick and reports whether it is still on screen.
func (p *Projectile) Advance() bool {
	p.Pos.Y -= ProjectileSpeed
	return p.Pos.Y >= 0
}

type Target struct {
	Pos      Vec
	Speed    float64 // signed horizontal px per tick
	Behavior Behavior
}

// Advance applies linear motion, reflects at the edge margins of a play area
// of width w, then layers the behavior's periodic drift for sim time t (ms).
func (t *Target) Advance(w, now float64) {
	t.Pos.X += t.Speed
	if t.Pos.X > w-EdgeMargin || t.Pos.X < EdgeMargin {
		t.Speed = -t.Speed
	}
	dx, dy := t.Behavior.Displace(now)
	t.Pos.X += dx
	t.Pos.Y += dy
}

// Hit reports whether a projectile at p overlaps this target.
func (t Target) Hit(p Vec) bool {
	return Dist(t.Pos, p) < TargetR
}
