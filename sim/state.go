// Package sim is the game model: session state, the per-tick simulation step and
// the level transition state machine. It draws nothing and has no clock or
// randomness of its own; both are injected so runs are reproducible.
package sim

import (
	"math/rand"

	"dinoshoot/entity"
	"dinoshoot/level"
)

// DefaultStep is the sim time advanced per tick, in milliseconds (60 TPS).
const DefaultStep = 1000.0 / 60.0

const KillScore = 10

type Phase uint8

const (
	Playing Phase = iota
	AwaitingNextLevel
	GameOver
	GameCompleted
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case AwaitingNextLevel:
		return "awaiting-next-level"
	case GameOver:
		return "game-over"
	case GameCompleted:
		return "game-completed"
	}
	return "unknown"
}

// Terminal phases freeze the simulation until the player acts.
func (p Phase) Terminal() bool { return p != Playing }

type State struct {
	Width, Height float64

	Level           int
	Score           int
	LevelStartScore int
	Ammo            level.Ammo
	Budget          level.Ammo // what a retry restores
	Speed           float64
	Phase           Phase

	Player      entity.Player
	Projectiles []entity.Projectile
	Targets     []entity.Target

	Clock float64 // sim time, ms
	Step  float64 // ms per tick

	table level.Table
	rng   *rand.Rand
}

// New starts a session at level 1 of table on a w x h play area.
func New(w, h float64, table level.Table, rng *rand.Rand) *State {
	s := &State{
		Width:  w,
		Height: h,
		Step:   DefaultStep,
		Player: entity.NewPlayer(w, h),
		table:  table,
		rng:    rng,
	}
	s.restart()
	return s
}

func (s *State) Table() level.Table { return s.table }

// Config is the current level's row of the table.
func (s *State) Config() level.Config {
	c, _ := s.table.Lookup(s.Level)
	return c
}

func (s *State) Background() string { return s.Config().Background }

// Move tracks the pointer. Ignored while the game is frozen.
func (s *State) Move(x float64) {
	if s.Phase.Terminal() {
		return
	}
	s.Player.Track(x)
}

// Fire launches a projectile from the muzzle if the game is running and there is
// ammo. It reports whether a shot was fired.
func (s *State) Fire() bool {
	if s.Phase.Terminal() || !s.Ammo.CanFire() {
		return false
	}
	s.Projectiles = append(s.Projectiles, entity.Projectile{Pos: s.Player.Muzzle()})
	s.Ammo = s.Ammo.Spend()
	return true
}

func (s *State) restart() {
	first, _ := s.table.Lookup(1)
	s.Level = 1
	s.Score = 0
	s.LevelStartScore = 0
	s.Speed = s.table.BaseSpeed
	s.Budget = first.Ammo
	s.startLevel()
}

// startLevel clears the field, refills ammo from Budget and respawns targets.
func (s *State) startLevel() {
	s.Ammo = s.Budget
	s.Projectiles = s.Projectiles[:0]
	s.Targets = Spawn(s.Targets[:0], s.rng, s.Config().Targets, s.Width, s.Speed)
	s.Phase = Playing
}
