package play

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/tetris"
)

// InputTask applies every command queued since the previous frame.
type InputTask struct {
	session *Session
	Applied int64
}

func (t *InputTask) Execute(frame *loop.Frame) {
	for {
		select {
		case cmd := <-t.session.commands:
			if t.session.Paused() && cmd != tetris.CommandRestart {
				continue
			}
			if cmd == tetris.CommandRestart {
				t.session.Resume()
			}
			t.session.sim.Apply(cmd)
			t.Applied++
		default:
			return
		}
	}
}

// GravityTask ticks the simulation once per TickInterval of accumulated
// frame time. Time spent paused or after game over does not accumulate.
type GravityTask struct {
	session *Session
	elapsed time.Duration
}

func (t *GravityTask) Execute(frame *loop.Frame) {
	sim := t.session.sim
	if t.session.Paused() {
		return
	}
	if sim.GameOver() {
		t.elapsed = 0
		return
	}

	t.elapsed += frame.DeltaTime
	for t.elapsed >= sim.TickInterval() {
		t.elapsed -= sim.TickInterval()
		sim.Tick()
		if sim.GameOver() {
			t.elapsed = 0
			return
		}
	}
}

// AutoPlayer submits one random in-game command each frame and restarts
// after game over. It drives headless runs.
type AutoPlayer struct {
	session *Session
	rng     *rand.Rand
	Games   int
}

// NewAutoPlayer returns a player for session. A nil rng uses the global
// generator.
func NewAutoPlayer(session *Session, rng *rand.Rand) *AutoPlayer {
	return &AutoPlayer{session: session, rng: rng}
}

func (p *AutoPlayer) Execute(frame *loop.Frame) {
	if p.session.sim.GameOver() {
		p.Games++
		p.session.Submit(tetris.CommandRestart)
		return
	}
	p.session.Submit(tetris.Commands[p.intN(len(tetris.Commands))])
}

func (p *AutoPlayer) intN(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	return p.rng.IntN(n)
}
