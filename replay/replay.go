// Package replay records the resolved input of a session and plays it back.
// A recording is a msgpack header followed by one msgpack frame per tick; given
// the same seed and table the simulation reproduces the run exactly.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"dinoshoot/input"
	"dinoshoot/level"
	"dinoshoot/session"
	"dinoshoot/sim"
	"dinoshoot/sound"
)

const Version = 1

type Header struct {
	Version      int           `msgpack:"v"`
	ID           string        `msgpack:"id"`
	Seed         int64         `msgpack:"seed"`
	Width        float64       `msgpack:"w"`
	Height       float64       `msgpack:"h"`
	Step         float64       `msgpack:"step"`
	BaseSpeed    float64       `msgpack:"base_speed"`
	AdvanceBonus int           `msgpack:"advance_bonus"`
	Levels       []levelRecord `msgpack:"levels"`
}

type levelRecord struct {
	Ammo       int     `msgpack:"ammo"`
	Unlimited  bool    `msgpack:"unlimited"`
	Targets    int     `msgpack:"targets"`
	Background string  `msgpack:"bg"`
	SpeedStep  float64 `msgpack:"speed_step"`
}

type frame struct {
	X       float64 `msgpack:"x"`
	Moved   bool    `msgpack:"m"`
	Trigger bool    `msgpack:"t"`
	PressX  float64 `msgpack:"px"`
	PressY  float64 `msgpack:"py"`
	Confirm bool    `msgpack:"c"`
}

// NewHeader describes a session started with sim.New(w, h, table, rand.New(rand.NewSource(seed))).
func NewHeader(seed int64, st *sim.State) Header {
	table := st.Table()
	h := Header{
		Version:      Version,
		ID:           uuid.NewString(),
		Seed:         seed,
		Width:        st.Width,
		Height:       st.Height,
		Step:         st.Step,
		BaseSpeed:    table.BaseSpeed,
		AdvanceBonus: table.AdvanceBonus,
	}
	for _, l := range table.Levels {
		h.Levels = append(h.Levels, levelRecord{
			Ammo:       l.Ammo.Count(),
			Unlimited:  l.Ammo.Unlimited(),
			Targets:    l.Targets,
			Background: l.Background,
			SpeedStep:  l.SpeedStep,
		})
	}
	return h
}

func (h Header) Table() level.Table {
	t := level.Table{BaseSpeed: h.BaseSpeed, AdvanceBonus: h.AdvanceBonus}
	for _, l := range h.Levels {
		ammo := level.Bounded(l.Ammo)
		if l.Unlimited {
			ammo = level.Unlimited()
		}
		t.Levels = append(t.Levels, level.Config{
			Ammo:       ammo,
			Targets:    l.Targets,
			Background: l.Background,
			SpeedStep:  l.SpeedStep,
		})
	}
	return t
}

// NewState builds the initial state the header describes.
func (h Header) NewState() (*sim.State, error) {
	t := h.Table()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("replay %s: %w", h.ID, err)
	}
	st := sim.New(h.Width, h.Height, t, rand.New(rand.NewSource(h.Seed)))
	if h.Step > 0 {
		st.Step = h.Step
	}
	return st, nil
}

// Recorder implements session.Recorder.
type Recorder struct {
	enc    *msgpack.Encoder
	header Header
	frames int
}

func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	return &Recorder{enc: enc, header: h}, nil
}

func (r *Recorder) Header() Header { return r.header }

func (r *Recorder) Frames() int { return r.frames }

func (r *Recorder) Record(f input.Frame) error {
	rec := frame{
		X:       f.X,
		Moved:   f.Moved,
		Trigger: f.Trigger,
		PressX:  f.Press.X,
		PressY:  f.Press.Y,
		Confirm: f.Confirm,
	}
	if err := r.enc.Encode(&rec); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Run replays a recording from r and returns the final session.
func Run(ctx context.Context, r io.Reader) (*session.Session, Header, error) {
	dec := msgpack.NewDecoder(r)

	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, h, fmt.Errorf("read replay header: %w", err)
	}
	if h.Version != Version {
		return nil, h, fmt.Errorf("replay %s: unsupported version %d", h.ID, h.Version)
	}

	st, err := h.NewState()
	if err != nil {
		return nil, h, err
	}
	s := session.New(st, sound.Silent{}, slog.New(slog.DiscardHandler))

	for {
		var f frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return s, h, nil
			}
			return nil, h, fmt.Errorf("replay %s tick %d: %w", h.ID, s.Ticks(), err)
		}
		in := input.Frame{
			X:       f.X,
			Moved:   f.Moved,
			Trigger: f.Trigger,
			Press:   input.Point{X: f.PressX, Y: f.PressY},
			Confirm: f.Confirm,
		}
		if err := s.Update(ctx, in); err != nil {
			return nil, h, err
		}
	}
}
