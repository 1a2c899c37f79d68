package main

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestView(t *testing.T, mode tetris.GameOverMode, board *tetris.Board) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	sim := tetris.NewSimulation(tetris.Options{
		Source:       tetris.NewSequenceSource(tetris.O),
		Board:        board,
		GameOverMode: mode,
	})
	session := play.NewSession(sim, play.Options{})
	scores := hud.NewScoreBoard(sim)
	sim.Subscribe(scores)
	sound := audio.NewObserver(audio.PlayerFunc(func(audio.Cue) error { return nil }), log.New(io.Discard, "", 0))

	return &View{
		screen:  screen,
		session: session,
		scores:  scores,
		sound:   sound,
		printer: hud.Printer(language.English),
	}, screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var out []rune
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func screenText(screen tcell.SimulationScreen) string {
	_, h := screen.Size()
	var b strings.Builder
	for y := range h {
		b.WriteString(rowText(screen, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestViewDrawsPieceAndStats(t *testing.T) {
	view, screen := newTestView(t, tetris.GameOverHalt, nil)
	view.Draw(view.session.Simulation().Snapshot())

	piece := view.session.Simulation().Piece()
	x := boardLeft + 1 + piece.X*cellWidth
	y := boardTop + 1 + piece.Y
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	c := tetris.O.Color()
	assert.Equal(t, tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])), bg)

	r, _, _, _ := screen.GetContent(x, boardTop+tetris.Rows)
	assert.Equal(t, '[', r, "ghost on the floor")

	assert.Contains(t, rowText(screen, boardTop+1), "Score 0")
	assert.Contains(t, rowText(screen, boardTop+2), "Best 0")
}

func TestViewGameOver(t *testing.T) {
	board := tetris.NewBoard()
	for y := range tetris.Rows {
		board.Set(4, y, tetris.CellOf(tetris.I))
	}
	view, screen := newTestView(t, tetris.GameOverHalt, board)
	require.True(t, view.session.Simulation().GameOver())

	view.Draw(view.session.Simulation().Snapshot())

	all := screenText(screen)
	assert.Contains(t, all, "GAME OVER")
	assert.Contains(t, all, "Press R to restart")
	assert.NotContains(t, all, "[]", "no ghost after game over")
}

func TestViewPausedAndMuted(t *testing.T) {
	view, screen := newTestView(t, tetris.GameOverHalt, nil)
	view.session.Pause()
	view.sound.SetMuted(true)
	view.Draw(view.session.Simulation().Snapshot())

	all := screenText(screen)
	assert.Contains(t, all, "PAUSED")
	assert.Contains(t, all, "Sound off")
}
