// Package play binds a simulation to a frame loop: queued input, gravity
// and any render tasks run in order on one goroutine each frame.
package play

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/tetris"
)

// DefaultQueueSize is the command buffer used when Options.QueueSize is 0.
const DefaultQueueSize = 32

// Options configures a Session.
type Options struct {
	// QueueSize bounds the number of commands waiting for the next frame.
	QueueSize int
}

// Session owns a simulation and the scheduler that drives it. Only the
// scheduler goroutine touches the simulation; other goroutines talk to it
// through Submit and the pause controls.
type Session struct {
	sim       *tetris.Simulation
	scheduler *loop.Scheduler
	commands  chan tetris.Command
	paused    atomic.Bool
}

// NewSession wires sim to a new scheduler with an InputTask followed by a
// GravityTask. Tasks added with Register run after both.
func NewSession(sim *tetris.Simulation, opts Options) *Session {
	size := opts.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}
	s := &Session{
		sim:       sim,
		scheduler: loop.NewScheduler(),
		commands:  make(chan tetris.Command, size),
	}
	s.scheduler.Register(&InputTask{session: s})
	s.scheduler.Register(&GravityTask{session: s})
	return s
}

// Simulation returns the driven simulation. Callers outside the scheduler
// goroutine must not use it while the session is running.
func (s *Session) Simulation() *tetris.Simulation { return s.sim }

// Scheduler exposes the loop for stats.
func (s *Session) Scheduler() *loop.Scheduler { return s.scheduler }

// Register appends a task that runs after input and gravity each frame.
func (s *Session) Register(task loop.Task) {
	s.scheduler.Register(task)
}

// RegisterNamed appends a task under an explicit stats name.
func (s *Session) RegisterNamed(name string, task loop.Task) {
	s.scheduler.RegisterNamed(name, task)
}

// Submit queues a command for the next frame. It never blocks; a full
// queue drops the command and returns false.
func (s *Session) Submit(cmd tetris.Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

// Step runs one frame on the calling goroutine.
func (s *Session) Step(dt time.Duration) {
	s.scheduler.Once(dt)
}

// Start runs frames every interval on a new goroutine.
func (s *Session) Start(ctx context.Context, interval time.Duration) *loop.Handle {
	return s.scheduler.Start(ctx, interval)
}

// Run runs frames every interval on the calling goroutine until ctx ends.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.scheduler.Run(ctx, interval)
}

// Pause freezes gravity and ignores every command except restart.
func (s *Session) Pause() { s.paused.Store(true) }

// Resume undoes Pause.
func (s *Session) Resume() { s.paused.Store(false) }

// TogglePause flips the pause state and returns the new one.
func (s *Session) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *Session) Paused() bool { return s.paused.Load() }
