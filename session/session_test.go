package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"dinoshoot/entity"
	"dinoshoot/input"
	"dinoshoot/level"
	"dinoshoot/session"
	"dinoshoot/sim"
	"dinoshoot/sound/mocks"
)

func newSession(t *testing.T, snd *mocks.MockPlayer) (*session.Session, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	st := sim.New(800, 600, level.Default(), rand.New(rand.NewSource(7)))
	return session.New(st, snd, log), &logs
}

// park keeps targets away from the firing line so shots never land.
func park(st *sim.State) {
	for i := range st.Targets {
		st.Targets[i] = entity.Target{Pos: entity.Vec{X: 700, Y: 100}, Behavior: entity.Bob}
	}
	st.Player.Track(100)
}

func TestUpdate_FirePlaysSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockPlayer(ctrl)
	snd.EXPECT().Play().Times(3)

	s, _ := newSession(t, snd)
	park(s.State())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.Update(ctx, input.Frame{Trigger: true, Press: input.Point{X: 100, Y: 500}}); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if err := s.Update(ctx, input.Frame{}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if s.Shots() != 3 || s.Ticks() != 4 {
		t.Errorf("shots/ticks = %d/%d, want 3/4", s.Shots(), s.Ticks())
	}
	if len(s.State().Projectiles) != 3 {
		t.Errorf("len(Projectiles) = %d, want 3", len(s.State().Projectiles))
	}
}

func TestUpdate_MoveTracksPointer(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newSession(t, mocks.NewMockPlayer(ctrl))

	if err := s.Update(context.Background(), input.Frame{X: 200, Moved: true}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.State().Player.Pos.X; got != 175 {
		t.Errorf("player x = %v, want 175", got)
	}
}

func TestUpdate_ButtonFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockPlayer(ctrl)
	snd.EXPECT().Play().Times(0)

	s, logs := newSession(t, snd)
	ctx := context.Background()
	if s.Button().Visible {
		t.Fatal("button visible while playing")
	}

	s.State().Targets = nil
	if err := s.Update(ctx, input.Frame{}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	b := s.Button()
	if !b.Visible || b.Label != "Next Level" {
		t.Fatalf("button = %+v, want visible Next Level", b)
	}
	if !strings.Contains(logs.String(), "level cleared") {
		t.Errorf("missing level cleared log: %s", logs.String())
	}

	// clicking beside the button is not a shot while frozen
	if err := s.Update(ctx, input.Frame{Trigger: true, Press: input.Point{X: 10, Y: 10}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.State().Phase != sim.AwaitingNextLevel {
		t.Fatalf("Phase = %s, want awaiting-next-level", s.State().Phase)
	}

	press := input.Point{X: b.X + 5, Y: b.Y + 5}
	if err := s.Update(ctx, input.Frame{Trigger: true, Press: press}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.State().Level != 2 || s.State().Phase != sim.Playing {
		t.Errorf("level/phase = %d/%s, want 2/playing", s.State().Level, s.State().Phase)
	}
	if s.Button().Visible {
		t.Error("button still visible after advancing")
	}
	if !strings.Contains(logs.String(), "level advanced") {
		t.Errorf("missing level advanced log: %s", logs.String())
	}
}

func TestUpdate_ConfirmRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, logs := newSession(t, mocks.NewMockPlayer(ctrl))
	ctx := context.Background()
	st := s.State()

	st.Targets = nil
	_ = s.Update(ctx, input.Frame{})
	_ = s.Update(ctx, input.Frame{Confirm: true})
	if st.Level != 2 {
		t.Fatalf("Level = %d, want 2", st.Level)
	}

	st.Ammo = level.Bounded(0)
	_ = s.Update(ctx, input.Frame{})
	if st.Phase != sim.GameOver || s.Button().Label != "Retry" {
		t.Fatalf("phase/button = %s/%q, want game-over/Retry", st.Phase, s.Button().Label)
	}
	if !strings.Contains(logs.String(), "out of ammo") {
		t.Errorf("missing out of ammo log: %s", logs.String())
	}

	_ = s.Update(ctx, input.Frame{Confirm: true})
	if st.Phase != sim.Playing || st.Ammo.Count() != 45 {
		t.Errorf("after retry phase/ammo = %s/%s, want playing/45", st.Phase, st.Ammo)
	}
}

type failingRecorder struct{}

func (failingRecorder) Record(input.Frame) error { return errors.New("disk full") }

func TestUpdate_RecorderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newSession(t, mocks.NewMockPlayer(ctrl))
	s.SetRecorder(failingRecorder{})

	err := s.Update(context.Background(), input.Frame{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("err = %v, want wrapped recorder error", err)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, want 0 after failed record", s.Ticks())
	}
}
