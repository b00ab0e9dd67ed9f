package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("invalid level table")

// file layout:
//
//	base_speed = 2.0
//	advance_bonus = 10
//
//	[[level]]
//	ammo = "unlimited"
//	targets = 3
//	background = "image1.webp"
//	speed_step = 0.5
type tableFile struct {
	BaseSpeed    *float64    `toml:"base_speed"`
	AdvanceBonus *int        `toml:"advance_bonus"`
	Level        []levelFile `toml:"level"`
}

type levelFile struct {
	Ammo       ammoValue `toml:"ammo"`
	Targets    int       `toml:"targets"`
	Background string    `toml:"background"`
	SpeedStep  *float64  `toml:"speed_step"`
}

type ammoValue struct {
	Ammo
	set bool
}

func (v *ammoValue) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case string:
		if !strings.EqualFold(d, "unlimited") {
			return fmt.Errorf("ammo %q: want an integer or \"unlimited\"", d)
		}
		v.Ammo = Unlimited()
	case int64:
		if d < 0 {
			return fmt.Errorf("ammo %d: must not be negative", d)
		}
		v.Ammo = Bounded(int(d))
	default:
		return fmt.Errorf("ammo: unsupported type %T", data)
	}
	v.set = true
	return nil
}

// Load reads a TOML level table.
func Load(r io.Reader) (Table, error) {
	var f tableFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return Table{}, fmt.Errorf("decode level table: %w", err)
	}

	t := Table{
		BaseSpeed:    DefaultBaseSpeed,
		AdvanceBonus: DefaultAdvanceBonus,
	}
	if f.BaseSpeed != nil {
		t.BaseSpeed = *f.BaseSpeed
	}
	if f.AdvanceBonus != nil {
		t.AdvanceBonus = *f.AdvanceBonus
	}
	for _, l := range f.Level {
		c := Config{
			Ammo:       l.Ammo.Ammo,
			Targets:    l.Targets,
			Background: l.Background,
			SpeedStep:  DefaultSpeedStep,
		}
		if !l.Ammo.set {
			c.Ammo = Unlimited()
		}
		if l.SpeedStep != nil {
			c.SpeedStep = *l.SpeedStep
		}
		t.Levels = append(t.Levels, c)
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// LoadFile is Load for a path on disk.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open level table: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t Table) Validate() error {
	if len(t.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalid)
	}
	if !t.Levels[0].Ammo.Unlimited() {
		return fmt.Errorf("%w: level 1 must have unlimited ammo", ErrInvalid)
	}
	if t.BaseSpeed < 0 {
		return fmt.Errorf("%w: negative base speed", ErrInvalid)
	}
	if t.AdvanceBonus < 0 {
		return fmt.Errorf("%w: negative advance bonus", ErrInvalid)
	}
	for i, l := range t.Levels {
		if l.Targets <= 0 {
			return fmt.Errorf("%w: level %d has %d targets", ErrInvalid, i+1, l.Targets)
		}
		if l.SpeedStep < 0 {
			return fmt.Errorf("%w: level %d has negative speed step", ErrInvalid, i+1)
		}
	}
	return nil
}
