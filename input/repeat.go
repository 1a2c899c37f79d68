// Package input turns per-frame key state into tetris commands with
// delayed auto-repeat. Frontends map their own keys onto Bindings.
package input

import (
	"time"

	"github.com/plus3/tetris/tetris"
)

const (
	DefaultRepeatDelay = 170 * time.Millisecond
	DefaultRepeatRate  = 50 * time.Millisecond
)

// Binding ties a command to whether holding it repeats.
type Binding struct {
	Command tetris.Command
	Repeat  bool
}

// Bindings are the in-game commands in a fixed order. Moves and soft drop
// repeat; rotate and hard drop fire once per press.
var Bindings = []Binding{
	{tetris.CommandMoveLeft, true},
	{tetris.CommandMoveRight, true},
	{tetris.CommandSoftDrop, true},
	{tetris.CommandRotate, false},
	{tetris.CommandHardDrop, false},
}

// KeyState is one frame's reading of a key.
type KeyState struct {
	// Pressed is true only on the frame the key went down.
	Pressed bool
	// Down is true while the key is held, including the pressed frame.
	Down bool
}

// Repeater tracks how long repeating keys have been held.
type Repeater struct {
	Delay time.Duration
	Rate  time.Duration
	held  map[tetris.Command]time.Duration
}

// NewRepeater uses the default delay and rate.
func NewRepeater() *Repeater {
	return &Repeater{
		Delay: DefaultRepeatDelay,
		Rate:  DefaultRepeatRate,
		held:  make(map[tetris.Command]time.Duration),
	}
}

// Step reports how many times b fires this frame. A key that is down
// without a press this repeater saw does not fire.
func (r *Repeater) Step(b Binding, key KeyState, dt time.Duration) int {
	if key.Pressed {
		r.held[b.Command] = 0
		return 1
	}
	if !key.Down || !b.Repeat {
		delete(r.held, b.Command)
		return 0
	}

	held, ok := r.held[b.Command]
	if !ok {
		return 0
	}
	held += dt
	fires := 0
	for held > r.Delay {
		held -= max(r.Rate, time.Millisecond)
		fires++
	}
	r.held[b.Command] = held
	return fires
}

// Commands reads every binding through read and returns the commands to
// submit this frame, in binding order.
func (r *Repeater) Commands(dt time.Duration, read func(tetris.Command) KeyState) []tetris.Command {
	var out []tetris.Command
	for _, b := range Bindings {
		for range r.Step(b, read(b.Command), dt) {
			out = append(out, b.Command)
		}
	}
	return out
}

// Reset forgets held keys, for example after a pause.
func (r *Repeater) Reset() {
	clear(r.held)
}
