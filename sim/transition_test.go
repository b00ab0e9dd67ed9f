package sim

import (
	"testing"

	"dinoshoot/level"
)

// winLevel wins the current level without touching the score.
func winLevel(s *State) {
	s.Targets = s.Targets[:0]
	s.Tick()
}

func TestNextLevel(t *testing.T) {
	s := newTestState(level.Default())
	s.Score = 30
	winLevel(s)

	if s.Phase != AwaitingNextLevel {
		t.Fatalf("Phase = %s, want awaiting-next-level", s.Phase)
	}
	if !s.Activate() {
		t.Fatal("Activate() = false")
	}

	if s.Level != 2 || s.Phase != Playing {
		t.Errorf("level/phase = %d/%s, want 2/playing", s.Level, s.Phase)
	}
	if s.LevelStartScore != 30 || s.Score != 30 {
		t.Errorf("score = %d (start %d), want 30 (30)", s.Score, s.LevelStartScore)
	}
	if s.Speed != 2.5 {
		t.Errorf("Speed = %v, want 2.5", s.Speed)
	}
	// 35 base + 10 advance bonus
	if s.Ammo.Count() != 45 || s.Budget.Count() != 45 {
		t.Errorf("Ammo/Budget = %s/%s, want 45/45", s.Ammo, s.Budget)
	}
	if len(s.Targets) != 5 || len(s.Projectiles) != 0 {
		t.Errorf("targets/projectiles = %d/%d, want 5/0", len(s.Targets), len(s.Projectiles))
	}
	if s.Background() != "image2.webp" {
		t.Errorf("Background() = %q, want image2.webp", s.Background())
	}
	for _, tg := range s.Targets {
		if tg.Speed != 2.5 && tg.Speed != -2.5 {
			t.Errorf("target speed = %v, want ±2.5", tg.Speed)
		}
	}
}

func TestRetry(t *testing.T) {
	s := newTestState(level.Default())
	winLevel(s)
	s.Score = 20
	s.NextLevel()

	s.Score = 70
	s.Ammo = level.Bounded(0)
	s.Fire()
	s.Tick()
	if s.Phase != GameOver {
		t.Fatalf("Phase = %s, want game-over", s.Phase)
	}
	if s.Fire() {
		t.Error("Fire() accepted after game over")
	}

	if !s.Activate() {
		t.Fatal("Activate() = false")
	}
	if s.Phase != Playing || s.Level != 2 {
		t.Errorf("phase/level = %s/%d, want playing/2", s.Phase, s.Level)
	}
	if s.Score != 20 {
		t.Errorf("Score = %d, want 20", s.Score)
	}
	if s.Ammo.Count() != 45 {
		t.Errorf("Ammo = %s, want 45", s.Ammo)
	}
	if len(s.Targets) != 5 || len(s.Projectiles) != 0 {
		t.Errorf("targets/projectiles = %d/%d, want 5/0", len(s.Targets), len(s.Projectiles))
	}
}

func TestCompleteAndPlayAgain(t *testing.T) {
	s := newTestState(level.Default())
	for lvl := 1; lvl <= 5; lvl++ {
		if s.Level != lvl {
			t.Fatalf("Level = %d, want %d", s.Level, lvl)
		}
		s.Score += 10
		winLevel(s)
		s.Activate()
	}

	if s.Phase != GameCompleted {
		t.Fatalf("Phase = %s, want game-completed", s.Phase)
	}
	if s.Affordance() != PlayAgain {
		t.Errorf("Affordance() = %q, want Play Again", s.Affordance().Label())
	}
	if s.Speed != 4 {
		t.Errorf("Speed = %v, want 4", s.Speed)
	}

	s.Tick()
	if s.Phase != GameCompleted {
		t.Error("tick left game-completed")
	}

	if !s.Activate() {
		t.Fatal("Activate() = false")
	}
	if s.Level != 1 || s.Score != 0 || s.LevelStartScore != 0 || s.Speed != 2 {
		t.Errorf("after play again level/score/start/speed = %d/%d/%d/%v", s.Level, s.Score, s.LevelStartScore, s.Speed)
	}
	if !s.Ammo.Unlimited() || s.Phase != Playing || len(s.Targets) != 3 {
		t.Errorf("after play again ammo/phase/targets = %s/%s/%d", s.Ammo, s.Phase, len(s.Targets))
	}
}

func TestTransitions_NotOffered(t *testing.T) {
	s := newTestState(level.Default())
	if s.Retry() || s.NextLevel() || s.PlayAgain() || s.Activate() {
		t.Error("transition accepted while playing")
	}

	s.Phase = GameOver
	if s.NextLevel() || s.PlayAgain() {
		t.Error("wrong transition accepted in game-over")
	}
	s.Phase = AwaitingNextLevel
	if s.Retry() || s.PlayAgain() {
		t.Error("wrong transition accepted in awaiting-next-level")
	}
	s.Phase = GameCompleted
	if s.Retry() || s.NextLevel() {
		t.Error("wrong transition accepted in game-completed")
	}
}

func TestAdvanceBonusStacksOnBase(t *testing.T) {
	// The top-up is the next level's base plus a flat bonus, and a retry restores
	// that same topped-up budget rather than the bare base.
	tbl := level.Default()
	tbl.AdvanceBonus = 3
	s := newTestState(tbl)
	winLevel(s)
	s.NextLevel()
	if s.Budget.Count() != 38 {
		t.Fatalf("Budget = %s, want 38", s.Budget)
	}

	s.Ammo = level.Bounded(0)
	s.Tick()
	s.Retry()
	if s.Ammo.Count() != 38 {
		t.Errorf("Ammo after retry = %s, want 38", s.Ammo)
	}
}
