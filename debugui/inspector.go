package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

// Inspector shows the simulation state and offers controls that go through
// the session's command queue.
type Inspector struct {
	session *play.Session
}

// NewInspector inspects session's simulation.
func NewInspector(session *play.Session) *Inspector {
	return &Inspector{session: session}
}

func (in *Inspector) Render(frame *loop.Frame) {
	snap := in.session.Simulation().Snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 310), imgui.CondOnce)

	if !imgui.BeginV("Simulation", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range Summary(snap) {
		imgui.Text(line)
	}
	if in.session.Paused() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	}
	if snap.GameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}

	imgui.Separator()
	label := "Pause"
	if in.session.Paused() {
		label = "Resume"
	}
	if imgui.Button(label) {
		in.session.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		in.session.Submit(tetris.CommandRestart)
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		in.session.Submit(tetris.CommandHardDrop)
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(snap.String())
		imgui.TreePop()
	}

	imgui.End()
}

// Summary describes a snapshot as text lines.
func Summary(snap tetris.Snapshot) []string {
	p := snap.Piece
	return []string{
		fmt.Sprintf("State: %s", snap.State),
		fmt.Sprintf("Piece: %s at (%d,%d) %dx%d", p.Kind, p.X, p.Y, p.Shape.Width(), p.Shape.Height()),
		fmt.Sprintf("Ghost row: %d", snap.GhostY),
		fmt.Sprintf("Score: %d  Lines: %d", snap.Score, snap.Lines),
		fmt.Sprintf("Level: %d  (tick %v)", snap.Level, tetris.TickInterval(snap.Level)),
		fmt.Sprintf("Pieces: %d", snap.Pieces),
	}
}
