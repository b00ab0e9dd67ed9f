package sound

import (
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Clip holds decoded 16-bit stereo PCM and starts a new player per Play.
type Clip struct {
	ctx    *audio.Context
	pcm    []byte
	volume float64
}

// LoadClip decodes a WAV file from fsys.
func LoadClip(ctx *audio.Context, fsys fs.FS, name string) (*Clip, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	s, err := wav.DecodeWithSampleRate(ctx.SampleRate(), f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return &Clip{ctx: ctx, pcm: pcm, volume: 1}, nil
}

// Tone synthesises a short decaying sine, used when the shot sample is missing.
func Tone(ctx *audio.Context, freq float64, seconds float64) *Clip {
	rate := ctx.SampleRate()
	n := int(float64(rate) * seconds)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * env * 0.35
		s := int16(v * 32767)
		// left, right
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return &Clip{ctx: ctx, pcm: pcm, volume: 1}
}

func (c *Clip) Play() {
	p := c.ctx.NewPlayerFromBytes(c.pcm)
	p.SetVolume(c.volume)
	p.Play()
}
