package entity

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Behavior is the periodic drift layered on top of a target's linear motion.
type Behavior uint8

const (
	Sway   Behavior = iota // red
	Bob                    // blue
	Drift                  // green
	Wander                 // orange
	Circle                 // purple

	behaviorCount
)

// Palette is the spawn order; targets get Palette[i%len(Palette)].
var Palette = [...]Behavior{Sway, Bob, Drift, Wander, Circle}

func (b Behavior) Color() color.RGBA {
	switch b {
	case Sway:
		return colornames.Red
	case Bob:
		return colornames.Blue
	case Drift:
		return colornames.Green
	case Wander:
		return colornames.Orange
	case Circle:
		return colornames.Purple
	}
	return colornames.White
}

func (b Behavior) String() string {
	switch b {
	case Sway:
		return "sway"
	case Bob:
		return "bob"
	case Drift:
		return "drift"
	case Wander:
		return "wander"
	case Circle:
		return "circle"
	}
	return "unknown"
}

func (b Behavior) Valid() bool { return b < behaviorCount }

// Displace is the per-tick offset at sim time t in milliseconds.
func (b Behavior) Displace(t float64) (dx, dy float64) {
	switch b {
	case Sway:
		dx = math.Sin(t/200) * 2
	case Bob:
		dy = math.Cos(t/300) * 2
	case Drift:
		dx = math.Cos(t/250) * 2
	case Wander:
		dx = math.Sin(t/400) * 2
		dy = math.Sin(t/300) * 1.5
	case Circle:
		dx = math.Cos(t/350) * 2
		dy = math.Cos(t/400) * 1.5
	}
	return dx, dy
}
