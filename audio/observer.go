package audio

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/plus3/tetris/tetris"
)

// Player emits a cue on some output device.
type Player interface {
	Play(Cue) error
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func(Cue) error

func (f PlayerFunc) Play(c Cue) error { return f(c) }

// Observer plays the cue for each simulation event it receives.
type Observer struct {
	player Player
	logger *log.Logger
	muted  atomic.Bool
	played atomic.Int64
	failed atomic.Int64
}

// NewObserver wraps player. A nil logger discards playback errors.
func NewObserver(player Player, logger *log.Logger) *Observer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Observer{player: player, logger: logger}
}

// Observe implements tetris.Observer.
func (o *Observer) Observe(e tetris.Event) {
	if o.muted.Load() {
		return
	}
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	o.play(cue)
}

func (o *Observer) play(cue Cue) {
	defer func() {
		if r := recover(); r != nil {
			o.failed.Add(1)
			o.logger.Printf("audio: %s cue panicked: %v", cue, r)
		}
	}()
	if err := o.player.Play(cue); err != nil {
		o.failed.Add(1)
		o.logger.Printf("audio: play %s: %v", cue, err)
		return
	}
	o.played.Add(1)
}

// SetMuted turns playback off or on. Safe from any goroutine.
func (o *Observer) SetMuted(muted bool) { o.muted.Store(muted) }

// ToggleMute flips the mute state and returns the new one.
func (o *Observer) ToggleMute() bool {
	for {
		old := o.muted.Load()
		if o.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (o *Observer) Muted() bool { return o.muted.Load() }

// Played counts cues the player accepted.
func (o *Observer) Played() int64 { return o.played.Load() }

// Failed counts cues that returned an error or panicked.
func (o *Observer) Failed() int64 { return o.failed.Load() }
