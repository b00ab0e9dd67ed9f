// Package session runs one player's game: it applies resolved input to the
// simulation, drives the on-screen button, plays shot sounds and logs phase
// changes. Frontends call Update once per display tick.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"dinoshoot/input"
	"dinoshoot/sim"
	"dinoshoot/sound"
	"dinoshoot/ui"
)

// Recorder receives every frame before it is applied.
type Recorder interface {
	Record(f input.Frame) error
}

type Session struct {
	state  *sim.State
	sound  sound.Player
	log    *slog.Logger
	button ui.Button
	rec    Recorder

	ticks uint64
	shots uint64
}

func New(state *sim.State, snd sound.Player, log *slog.Logger) *Session {
	if snd == nil {
		snd = sound.Silent{}
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Session{state: state, sound: snd, log: log}
	s.syncButton()
	return s
}

// SetRecorder starts recording frames. Pass nil to stop.
func (s *Session) SetRecorder(r Recorder) { s.rec = r }

func (s *Session) State() *sim.State { return s.state }

func (s *Session) Button() ui.Button { return s.button }

func (s *Session) Ticks() uint64 { return s.ticks }

func (s *Session) Shots() uint64 { return s.shots }

// Update applies one frame of input and advances the simulation one tick.
func (s *Session) Update(ctx context.Context, f input.Frame) error {
	if s.rec != nil {
		if err := s.rec.Record(f); err != nil {
			return fmt.Errorf("record tick %d: %w", s.ticks, err)
		}
	}
	s.ticks++

	if f.Moved {
		s.state.Move(f.X)
	}

	switch {
	case f.Confirm, f.Trigger && s.button.Contains(f.Press.X, f.Press.Y):
		s.activate(ctx)
	case f.Trigger:
		if s.state.Fire() {
			s.shots++
			s.sound.Play()
		}
	}

	res := s.state.Tick()
	if res.Changed() {
		s.logTick(ctx, res)
	}
	s.syncButton()
	return nil
}

func (s *Session) activate(ctx context.Context) {
	action := s.state.Affordance()
	level := s.state.Level
	if !s.state.Activate() {
		return
	}

	st := s.state
	switch {
	case action == sim.NextLevel && st.Phase == sim.GameCompleted:
		s.log.InfoContext(ctx, "game completed", "score", st.Score, "levels", st.Table().Len())
	case action == sim.NextLevel:
		s.log.InfoContext(ctx, "level advanced",
			"from", level, "to", st.Level, "ammo", st.Ammo.String(), "speed", st.Speed, "targets", len(st.Targets))
	case action == sim.Retry:
		s.log.InfoContext(ctx, "retry", "level", st.Level, "score", st.Score, "ammo", st.Ammo.String())
	case action == sim.PlayAgain:
		s.log.InfoContext(ctx, "play again")
	}
	s.syncButton()
}

func (s *Session) logTick(ctx context.Context, res sim.Result) {
	st := s.state
	switch res.To {
	case sim.AwaitingNextLevel:
		s.log.InfoContext(ctx, "level cleared", "level", st.Level, "score", st.Score, "ammo", st.Ammo.String())
	case sim.GameOver:
		s.log.InfoContext(ctx, "out of ammo", "level", st.Level, "score", st.Score, "targets", len(st.Targets))
	default:
		s.log.DebugContext(ctx, "phase changed", "from", res.From, "to", res.To)
	}
}

func (s *Session) syncButton() {
	action := s.state.Affordance()
	if action == sim.NoAction {
		s.button.Hide()
		return
	}
	s.button.Show(action.Label(), s.state.Width, s.state.Height)
}
