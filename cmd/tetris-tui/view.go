package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"golang.org/x/text/message"
)

const (
	boardLeft = 2
	boardTop  = 1
	// Each board cell is two terminal columns wide so it looks square.
	cellWidth = 2
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// View is a loop.Task that draws the session to a tcell screen once per
// frame.
type View struct {
	screen  tcell.Screen
	session *play.Session
	scores  *hud.ScoreBoard
	sound   *audio.Observer
	printer *message.Printer
}

func (v *View) Execute(frame *loop.Frame) {
	v.Draw(v.session.Simulation().Snapshot())
	v.screen.Show()
}

func kindStyle(k tetris.Kind) tcell.Style {
	c := k.Color()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])))
}

func (v *View) setCell(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(boardLeft+1+x*cellWidth+i, boardTop+1+y, r, nil, style)
	}
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw renders snap without showing it.
func (v *View) Draw(snap tetris.Snapshot) {
	v.screen.Clear()

	right := boardLeft + 1 + tetris.Cols*cellWidth
	bottom := boardTop + 1 + tetris.Rows
	for y := boardTop; y <= bottom; y++ {
		v.screen.SetContent(boardLeft, y, '│', nil, frameStyle)
		v.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := boardLeft; x <= right; x++ {
		v.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	v.screen.SetContent(boardLeft, bottom, '└', nil, frameStyle)
	v.screen.SetContent(right, bottom, '┘', nil, frameStyle)

	for y := range tetris.Rows {
		for x := range tetris.Cols {
			v.setCell(x, y, " .", emptyStyle)
		}
	}
	if !snap.GameOver() {
		for x, y := range snap.GhostCells() {
			v.setCell(x, y, "[]", ghostStyle)
		}
	}
	for y, row := range snap.Composite() {
		for x, cell := range row {
			if kind, ok := cell.Kind(); ok {
				v.setCell(x, y, "  ", kindStyle(kind))
			}
		}
	}

	textX := right + 3
	y := boardTop + 1
	for _, line := range v.scores.Stats().Lines(v.printer) {
		style := textStyle
		if line == v.printer.Sprintf(hud.KeyGameOver) {
			style = alertStyle
		}
		v.drawText(textX, y, line, style)
		y++
	}
	y++
	if v.session.Paused() {
		v.drawText(textX, y, v.printer.Sprintf(hud.KeyPaused), alertStyle)
		y++
	}
	if v.sound.Muted() {
		v.drawText(textX, y, v.printer.Sprintf(hud.KeyMuted), textStyle)
	}
	v.drawText(boardLeft, bottom+1, "←→ move  ↑ rotate  ␣ drop  p pause  m mute  r restart  q quit", frameStyle)
}
