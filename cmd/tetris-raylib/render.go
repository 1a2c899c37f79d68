package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"golang.org/x/text/message"
)

const (
	cellSize = 30
	offsetX  = 50
	offsetY  = 50
)

var ghostColor = rl.NewColor(255, 255, 255, 80)

func kindColor(k tetris.Kind) rl.Color {
	c := k.Color()
	return rl.NewColor(c[0], c[1], c[2], 255)
}

// RenderTask draws the session once per frame. It runs last on the session
// scheduler so it sees this frame's input and gravity.
type RenderTask struct {
	session *play.Session
	scores  *hud.ScoreBoard
	sound   *audio.Observer
	printer *message.Printer
}

func drawCell(x, y int, c rl.Color) {
	px := int32(offsetX + x*cellSize)
	py := int32(offsetY + y*cellSize)
	rl.DrawRectangle(px, py, cellSize, cellSize, c)
	rl.DrawRectangleLines(px, py, cellSize, cellSize, rl.Black)
}

func (r *RenderTask) Execute(frame *loop.Frame) {
	snap := r.session.Simulation().Snapshot()

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangleLines(offsetX-2, offsetY-2, tetris.Cols*cellSize+4, tetris.Rows*cellSize+4, rl.Gray)

	if !snap.GameOver() {
		for x, y := range snap.GhostCells() {
			rl.DrawRectangle(int32(offsetX+x*cellSize), int32(offsetY+y*cellSize), cellSize, cellSize, ghostColor)
		}
	}
	for y, row := range snap.Composite() {
		for x, cell := range row {
			if kind, ok := cell.Kind(); ok {
				drawCell(x, y, kindColor(kind))
			}
		}
	}

	textX := int32(offsetX + tetris.Cols*cellSize + 20)
	stats := r.scores.Stats()
	stats.GameOver = false
	for i, line := range stats.Lines(r.printer) {
		rl.DrawText(line, textX, int32(offsetY+i*30), 20, rl.White)
	}
	if r.sound.Muted() {
		rl.DrawText(r.printer.Sprintf(hud.KeyMuted), textX, offsetY+180, 16, rl.Gray)
	}

	midY := int32(offsetY + tetris.Rows*cellSize/2)
	switch {
	case snap.GameOver():
		rl.DrawText(r.printer.Sprintf(hud.KeyGameOver), offsetX+50, midY-10, 30, rl.Red)
		rl.DrawText(r.printer.Sprintf(hud.KeyRestart), offsetX+50, midY+30, 20, rl.White)
	case r.session.Paused():
		rl.DrawText(r.printer.Sprintf(hud.KeyPaused), offsetX+90, midY-10, 30, rl.Yellow)
	}
}
