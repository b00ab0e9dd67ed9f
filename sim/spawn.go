package sim

import (
	"math/rand"

	"dinoshoot/entity"
)

const (
	spawnTop    = 30.0
	spawnBand   = 200.0
	spawnMargin = entity.EdgeMargin
)

// Spawn appends n targets to dst. x is uniform in [20, width-20], y in [30, 230],
// direction is random at the given speed, and behaviors cycle through the palette.
func Spawn(dst []entity.Target, rng *rand.Rand, n int, width, speed float64) []entity.Target {
	for i := 0; i < n; i++ {
		x := rng.Float64()*(width-2*spawnMargin) + spawnMargin
		y := rng.Float64()*spawnBand + spawnTop
		v := speed
		if rng.Float64() <= 0.5 {
			v = -speed
		}
		dst = append(dst, entity.Target{
			Pos:      entity.Vec{X: x, Y: y},
			Speed:    v,
			Behavior: entity.Palette[i%len(entity.Palette)],
		})
	}
	return dst
}
