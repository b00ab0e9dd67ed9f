// Package sound plays the per-shot effect. Playback is fire-and-forget and
// overlapping shots each get their own voice.
package sound

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

type Player interface {
	Play()
}

// Silent is used when audio is muted or unavailable.
type Silent struct{}

func (Silent) Play() {}
