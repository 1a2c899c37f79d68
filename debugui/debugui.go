// Package debugui provides Dear ImGui inspector windows for a running tetris
// session. The windows read the simulation through snapshots and events and
// drive it only by submitting commands.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/loop"
)

// Window renders one Dear ImGui window per frame.
type Window interface {
	Render(frame *loop.Frame)
}

// WindowFunc adapts a function to Window.
type WindowFunc func(frame *loop.Frame)

func (f WindowFunc) Render(frame *loop.Frame) { f(frame) }

// InputState tracks Dear ImGui's input capture state. Frontends check it
// before treating a key press as a game command.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a loop.Task that renders its windows in order. Run it between
// the backend's BeginFrame and EndFrame.
type Overlay struct {
	windows []Window
	input   InputState
	Hidden  bool
}

// NewOverlay returns an overlay with the given windows.
func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{windows: windows}
}

// Add appends a window.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Len is the number of windows.
func (o *Overlay) Len() int { return len(o.windows) }

// InputState is the capture state read during the last frame.
func (o *Overlay) InputState() InputState { return o.input }

// Execute updates input state and renders every window.
func (o *Overlay) Execute(frame *loop.Frame) {
	if o.Hidden {
		o.input = InputState{}
		return
	}
	o.input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, w := range o.windows {
		w.Render(frame)
	}
}
