package sim

// Result summarises one tick.
type Result struct {
	Kills int
	From  Phase
	To    Phase
}

func (r Result) Changed() bool { return r.From != r.To }

// Tick advances the simulation one frame. Frozen phases are left untouched.
func (s *State) Tick() Result {
	res := Result{From: s.Phase, To: s.Phase}
	if s.Phase.Terminal() {
		return res
	}
	s.Clock += s.Step

	// projectiles
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		if !s.Projectiles[i].Advance() {
			s.Projectiles = append(s.Projectiles[:i], s.Projectiles[i+1:]...)
		}
	}

	// targets
	for i := range s.Targets {
		s.Targets[i].Advance(s.Width, s.Clock)
	}

	res.Kills = s.collide()
	s.Score += res.Kills * KillScore

	switch {
	case len(s.Targets) == 0:
		s.Phase = AwaitingNextLevel
	case s.Ammo.Exhausted():
		s.Phase = GameOver
	}
	res.To = s.Phase
	return res
}

// collide removes every projectile/target pair closer than the target radius.
// A projectile takes out at most one target.
func (s *State) collide() int {
	kills := 0
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i].Pos
		for j := len(s.Targets) - 1; j >= 0; j-- {
			if !s.Targets[j].Hit(p) {
				continue
			}
			s.Targets = append(s.Targets[:j], s.Targets[j+1:]...)
			s.Projectiles = append(s.Projectiles[:i], s.Projectiles[i+1:]...)
			kills++
			break
		}
	}
	return kills
}
