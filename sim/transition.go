package sim

// Action is the single affordance offered in a frozen phase.
type Action uint8

const (
	NoAction Action = iota
	Retry
	NextLevel
	PlayAgain
)

func (a Action) Label() string {
	switch a {
	case Retry:
		return "Retry"
	case NextLevel:
		return "Next Level"
	case PlayAgain:
		return "Play Again"
	}
	return ""
}

// Affordance is the action the current phase offers, if any.
func (s *State) Affordance() Action {
	switch s.Phase {
	case GameOver:
		return Retry
	case AwaitingNextLevel:
		return NextLevel
	case GameCompleted:
		return PlayAgain
	}
	return NoAction
}

// Activate performs the offered action. It reports false when nothing is offered.
func (s *State) Activate() bool {
	switch s.Affordance() {
	case Retry:
		return s.Retry()
	case NextLevel:
		return s.NextLevel()
	case PlayAgain:
		return s.PlayAgain()
	}
	return false
}

// Retry replays the current level from its starting score with a full budget.
func (s *State) Retry() bool {
	if s.Phase != GameOver {
		return false
	}
	s.Score = s.LevelStartScore
	s.startLevel()
	return true
}

// NextLevel advances to the following level, or completes the game when there is
// none. The new budget is the next level's ammo plus the table's advance bonus.
func (s *State) NextLevel() bool {
	if s.Phase != AwaitingNextLevel {
		return false
	}
	next, ok := s.table.Lookup(s.Level + 1)
	if !ok {
		s.Phase = GameCompleted
		return true
	}
	s.Level++
	s.LevelStartScore = s.Score
	s.Speed += next.SpeedStep
	s.Budget = next.Ammo.Add(s.table.AdvanceBonus)
	s.startLevel()
	return true
}

// PlayAgain resets to level 1 with no score after finishing the game.
func (s *State) PlayAgain() bool {
	if s.Phase != GameCompleted {
		return false
	}
	s.restart()
	return true
}
