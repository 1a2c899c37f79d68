// Package audio turns simulation events into short synthesized sound cues.
// It only observes the game; playback failures are logged and never reach
// the simulation.
package audio

import (
	"fmt"

	"github.com/plus3/tetris/tetris"
)

// Cue is one sound effect.
type Cue uint8

const (
	CueMove Cue = iota + 1
	CueRotate
	CueDrop
	CueClear
	CueGameOver
)

// Cues lists every cue, for preloading.
var Cues = []Cue{CueMove, CueRotate, CueDrop, CueClear, CueGameOver}

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueRotate:
		return "rotate"
	case CueDrop:
		return "drop"
	case CueClear:
		return "clear"
	case CueGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("Cue(%d)", uint8(c))
	}
}

// CueFor maps an event to its cue. Falling one row, spawning, scoring and
// resets are silent; so is a hard drop that did not move the piece.
func CueFor(e tetris.Event) (Cue, bool) {
	switch e.Kind {
	case tetris.EventMoved:
		if e.DX != 0 {
			return CueMove, true
		}
	case tetris.EventRotated:
		return CueRotate, true
	case tetris.EventLocked:
		return CueDrop, true
	case tetris.EventHardDropped:
		if e.DY > 0 {
			return CueDrop, true
		}
	case tetris.EventLinesCleared:
		return CueClear, true
	case tetris.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}
