// Package loop runs a fixed list of tasks once per frame, either driven by
// the caller or on a ticker, and keeps per-task timing statistics.
package loop

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	TaskCount       int
	Frames          uint64
	TotalExecutions int64
	Tasks           []TaskStats
}

// TaskStats provides execution statistics for a single task.
type TaskStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type taskStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes tasks in order. Register every task before
// the first frame; GetStats may be called from any goroutine.
type Scheduler struct {
	mu        sync.Mutex
	tasks     []Task
	taskStats []*taskStatsInternal
	frames    uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make([]Task, 0),
	}
}

// Register adds a task, named after its type.
func (s *Scheduler) Register(task Task) {
	taskType := reflect.TypeOf(task)
	if taskType.Kind() == reflect.Ptr {
		taskType = taskType.Elem()
	}
	s.RegisterNamed(taskType.Name(), task)
}

// RegisterNamed adds a task under an explicit name, for TaskFunc values
// and other unnamed types.
func (s *Scheduler) RegisterNamed(name string, task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	s.taskStats = append(s.taskStats, &taskStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered tasks once with the given delta time.
func (s *Scheduler) Once(dt time.Duration) {
	s.mu.Lock()
	s.frames++
	frame := &Frame{DeltaTime: dt, Tick: s.frames}
	tasks := s.tasks
	s.mu.Unlock()

	for i, task := range tasks {
		start := time.Now()
		task.Execute(frame)
		duration := time.Since(start)

		s.mu.Lock()
		stats := s.taskStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		s.mu.Unlock()
	}
}

// Run executes all tasks repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// Start runs the scheduler on a new goroutine. Stop the returned handle, or
// cancel ctx, to end it.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		s.Run(ctx, interval)
	}()
	return h
}

// GetStats returns statistics about task execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &SchedulerStats{
		TaskCount: len(s.tasks),
		Frames:    s.frames,
		Tasks:     make([]TaskStats, len(s.taskStats)),
	}

	var totalExecs int64
	for i, internal := range s.taskStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Tasks[i] = TaskStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// Handle controls a scheduler started with Start.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the loop and waits for the in-flight frame to finish. It is
// safe to call more than once.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed once the loop goroutine has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
