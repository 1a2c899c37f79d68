package tetris

import "fmt"

// Command is a discrete player input. The simulation does not know which
// key or button produced it.
type Command uint8

const (
	CommandMoveLeft Command = iota + 1
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandRestart
)

// Commands lists the in-game inputs, excluding CommandRestart.
var Commands = []Command{
	CommandMoveLeft,
	CommandMoveRight,
	CommandSoftDrop,
	CommandRotate,
	CommandHardDrop,
}

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	case CommandSoftDrop:
		return "soft-drop"
	case CommandRotate:
		return "rotate"
	case CommandHardDrop:
		return "hard-drop"
	case CommandRestart:
		return "restart"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}
