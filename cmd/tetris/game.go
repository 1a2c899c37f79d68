package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	cellSize = 30
	offsetX  = 40
	offsetY  = 50
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridLine   = color.RGBA{0x30, 0x30, 0x40, 0xff}
	ghostColor = color.RGBA{0xff, 0xff, 0xff, 0x50}
	frameColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

var keys = map[tetris.Command][]ebiten.Key{
	tetris.CommandMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	tetris.CommandMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	tetris.CommandSoftDrop:  {ebiten.KeyArrowDown, ebiten.KeyS},
	tetris.CommandRotate:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyZ},
	tetris.CommandHardDrop:  {ebiten.KeySpace},
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	session  *play.Session
	scores   *hud.ScoreBoard
	sound    *audio.Observer
	repeater *input.Repeater
	printer  *message.Printer

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func newGame(session *play.Session, scores *hud.ScoreBoard, sound *audio.Observer) *Game {
	return &Game{
		session:  session,
		scores:   scores,
		sound:    sound,
		repeater: input.NewRepeater(),
		printer:  hud.Printer(language.English),
	}
}

func readKey(cmd tetris.Command) input.KeyState {
	var state input.KeyState
	for _, k := range keys[cmd] {
		state.Pressed = state.Pressed || inpututil.IsKeyJustPressed(k)
		state.Down = state.Down || ebiten.IsKeyPressed(k)
	}
	return state
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if g.overlay == nil || !g.overlay.InputState().WantCaptureKeyboard {
		g.handleKeys(dt)
	}

	g.session.Step(dt)
	return nil
}

func (g *Game) handleKeys(dt time.Duration) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Submit(tetris.CommandRestart)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.session.TogglePause()
		g.repeater.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sound.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyF1) && g.overlay != nil:
		g.overlay.Hidden = !g.overlay.Hidden
	}

	for _, cmd := range g.repeater.Commands(dt, readKey) {
		g.session.Submit(cmd)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap := g.session.Simulation().Snapshot()
	drawBoard(screen, snap)
	g.drawHUD(screen)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	px := float32(offsetX + x*cellSize)
	py := float32(offsetY + y*cellSize)
	vector.DrawFilledRect(screen, px, py, cellSize, cellSize, clr, false)
	vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, background, false)
}

func drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	vector.StrokeRect(screen, offsetX-2, offsetY-2, tetris.Cols*cellSize+4, tetris.Rows*cellSize+4, 2, frameColor, false)

	for y := range tetris.Rows {
		for x := range tetris.Cols {
			px := float32(offsetX + x*cellSize)
			py := float32(offsetY + y*cellSize)
			vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, gridLine, false)
		}
	}

	if !snap.GameOver() {
		for x, y := range snap.GhostCells() {
			drawCell(screen, x, y, ghostColor)
		}
	}

	cells := snap.Composite()
	for y, row := range cells {
		for x, cell := range row {
			if kind, ok := cell.Kind(); ok {
				drawCell(screen, x, y, kind.Color().ToRGBA())
			}
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	textX := offsetX + tetris.Cols*cellSize + 20
	y := offsetY
	for _, line := range g.scores.Stats().Lines(g.printer) {
		ebitenutil.DebugPrintAt(screen, line, textX, y)
		y += 20
	}

	y += 20
	if g.session.Paused() {
		ebitenutil.DebugPrintAt(screen, g.printer.Sprintf(hud.KeyPaused), textX, y)
		y += 20
	}
	if g.sound.Muted() {
		ebitenutil.DebugPrintAt(screen, g.printer.Sprintf(hud.KeyMuted), textX, y)
	}

	ebitenutil.DebugPrintAt(screen, "Arrows move, Up rotates, Space drops\nP pause  M mute  R restart  Esc quit", offsetX, offsetY+tetris.Rows*cellSize+12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
