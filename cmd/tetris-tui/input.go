package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

// commandFor maps a key to a game command. Terminals report held keys as
// repeated presses, so no repeat handling is needed here.
func commandFor(ev *tcell.EventKey) (tetris.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.CommandMoveLeft, true
	case tcell.KeyRight:
		return tetris.CommandMoveRight, true
	case tcell.KeyDown:
		return tetris.CommandSoftDrop, true
	case tcell.KeyUp:
		return tetris.CommandRotate, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return tetris.CommandMoveLeft, true
		case 'l', 'd':
			return tetris.CommandMoveRight, true
		case 'j', 's':
			return tetris.CommandSoftDrop, true
		case 'k', 'w', 'z':
			return tetris.CommandRotate, true
		case ' ':
			return tetris.CommandHardDrop, true
		case 'r':
			return tetris.CommandRestart, true
		}
	}
	return 0, false
}

// handleEvent applies one terminal event. It returns false when the player
// asked to quit.
func handleEvent(ev tcell.Event, session *play.Session, sound *audio.Observer, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'p':
				session.TogglePause()
				return true
			case 'm':
				sound.ToggleMute()
				return true
			}
		}
		if cmd, ok := commandFor(ev); ok {
			session.Submit(cmd)
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
