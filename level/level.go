// Package level holds the per-level configuration table.
package level

import (
	"strconv"
)

const (
	DefaultBaseSpeed    = 2.0
	DefaultSpeedStep    = 0.5
	DefaultAdvanceBonus = 10
)

// Ammo is either a bounded round count or unlimited. The zero value is Bounded(0).
type Ammo struct {
	n         int
	unlimited bool
}

func Bounded(n int) Ammo {
	if n < 0 {
		n = 0
	}
	return Ammo{n: n}
}

func Unlimited() Ammo { return Ammo{unlimited: true} }

func (a Ammo) Unlimited() bool { return a.unlimited }

// Count returns the rounds left; it is meaningless for unlimited ammo.
func (a Ammo) Count() int { return a.n }

// CanFire reports whether one more shot is available.
func (a Ammo) CanFire() bool { return a.unlimited || a.n > 0 }

// Spend consumes one round. Unlimited ammo and empty magazines are unchanged.
func (a Ammo) Spend() Ammo {
	if a.unlimited || a.n == 0 {
		return a
	}
	return Ammo{n: a.n - 1}
}

// Add tops up a bounded budget. Unlimited stays unlimited.
func (a Ammo) Add(n int) Ammo {
	if a.unlimited {
		return a
	}
	return Bounded(a.n + n)
}

// Exhausted is true only for a bounded budget at zero.
func (a Ammo) Exhausted() bool { return !a.unlimited && a.n == 0 }

func (a Ammo) String() string {
	if a.unlimited {
		return "∞"
	}
	return strconv.Itoa(a.n)
}

// Config is one row of the level table.
type Config struct {
	Ammo       Ammo
	Targets    int
	Background string
	SpeedStep  float64
}

// Table maps level numbers (1-based) to configuration. Levels are contiguous.
type Table struct {
	Levels       []Config
	BaseSpeed    float64
	AdvanceBonus int
}

// Lookup returns the configuration for level n. ok is false past the last level,
// which is how callers detect that the game is finished.
func (t Table) Lookup(n int) (Config, bool) {
	if n < 1 || n > len(t.Levels) {
		return Config{}, false
	}
	return t.Levels[n-1], true
}

func (t Table) Len() int { return len(t.Levels) }

// Default is the five-level campaign.
func Default() Table {
	return Table{
		BaseSpeed:    DefaultBaseSpeed,
		AdvanceBonus: DefaultAdvanceBonus,
		Levels: []Config{
			{Ammo: Unlimited(), Targets: 3, Background: "image1.webp", SpeedStep: DefaultSpeedStep},
			{Ammo: Bounded(35), Targets: 5, Background: "image2.webp", SpeedStep: DefaultSpeedStep},
			{Ammo: Bounded(40), Targets: 8, Background: "image3.webp", SpeedStep: DefaultSpeedStep},
			{Ammo: Bounded(45), Targets: 10, Background: "image4.webp", SpeedStep: DefaultSpeedStep},
			{Ammo: Bounded(50), Targets: 12, Background: "image5.jpg", SpeedStep: DefaultSpeedStep},
		},
	}
}
