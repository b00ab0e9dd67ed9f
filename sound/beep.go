package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// InitSpeaker opens the beep speaker. Call Close on shutdown.
func InitSpeaker(rate beep.SampleRate) error {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	return nil
}

func Close() { speaker.Close() }

// Click is a short sine burst mixed into the beep speaker.
type Click struct {
	Rate     beep.SampleRate
	Freq     float64
	Duration time.Duration
}

func (c Click) Play() {
	sine, err := generators.SineTone(c.Rate, c.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.Rate.N(c.Duration), sine))
}
