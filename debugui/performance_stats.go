package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/tetris/loop"
)

// FrameHistory is a fixed ring of per-frame millisecond samples.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

// NewFrameHistory keeps size samples.
func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Add records one sample.
func (h *FrameHistory) Add(d time.Duration) {
	h.samples[h.index] = float32(d.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Ordered returns the samples oldest first.
func (h *FrameHistory) Ordered() []float32 {
	out := make([]float32, 0, len(h.samples))
	if h.filled < len(h.samples) {
		return append(out, h.samples[:h.filled]...)
	}
	out = append(out, h.samples[h.index:]...)
	return append(out, h.samples[:h.index]...)
}

// Average is the mean of the recorded samples in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Ordered() {
		sum += v
	}
	return sum / float32(h.filled)
}

// PerformanceStats charts frame times and the scheduler's per-task timing.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	frames    *FrameHistory
	tasks     map[string]*FrameHistory
	timer     *FrameTimer
}

// NewPerformanceStats keeps historyFrames samples per series.
func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		frames:    NewFrameHistory(historyFrames),
		tasks:     make(map[string]*FrameHistory),
		timer:     NewFrameTimer(),
	}
}

// Sample records the wall time since the previous frame and each task's
// last duration.
func (ps *PerformanceStats) Sample() *loop.SchedulerStats {
	ps.frames.Add(ps.timer.DeltaTime())

	stats := ps.scheduler.GetStats()
	for _, task := range stats.Tasks {
		h, ok := ps.tasks[task.Name]
		if !ok {
			h = NewFrameHistory(len(ps.frames.samples))
			ps.tasks[task.Name] = h
		}
		h.Add(task.LastDuration)
	}
	return stats
}

func (ps *PerformanceStats) Render(frame *loop.Frame) {
	stats := ps.Sample()

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 420), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if history := ps.frames.Ordered(); len(history) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &history[0], int32(len(history)))
	}

	if imgui.TreeNodeStr("Tasks") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TaskStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Task")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, task := range stats.Tasks {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(task.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", task.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(task.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(task.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(task.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Task Latency") {
		if implot.BeginPlotV("Task Latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, task := range stats.Tasks {
				series := ps.tasks[task.Name].Ordered()
				if len(series) > 0 {
					implot.PlotLineFloatPtrInt(task.Name, &series[0], int32(len(series)))
				}
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) DeltaTime() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
