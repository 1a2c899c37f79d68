package loop

import "time"

// Task is one step of a frame. Tasks run in registration order on the
// scheduler's goroutine and may keep state between frames.
type Task interface {
	Execute(frame *Frame)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(frame *Frame)

func (f TaskFunc) Execute(frame *Frame) { f(frame) }

// Frame describes the frame being executed.
type Frame struct {
	// DeltaTime is the time since the previous frame.
	DeltaTime time.Duration
	// Tick counts frames from 1.
	Tick uint64
}
