// Package tetris implements the falling-block puzzle simulation: the board,
// the seven tetromino kinds and the state machine that moves, locks and
// clears them. Frontends drive it with commands and read it back through
// snapshots and events.
package tetris

import (
	"fmt"
	"image/color"
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// Kinds lists every kind in declaration order.
var Kinds = [KindCount]Kind{I, O, T, S, Z, J, L}

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

var kindShapes = [KindCount][][]int{
	I: {
		{1, 1, 1, 1},
	},
	O: {
		{1, 1},
		{1, 1},
	},
	T: {
		{1, 1, 1},
		{0, 1, 0},
	},
	S: {
		{0, 1, 1},
		{1, 1, 0},
	},
	Z: {
		{1, 1, 0},
		{0, 1, 1},
	},
	J: {
		{0, 1},
		{0, 1},
		{1, 1},
	},
	L: {
		{1, 0},
		{1, 0},
		{1, 1},
	},
}

var kindColors = [KindCount]Color{
	I: {0x00, 0xf0, 0xf0},
	O: {0xf0, 0xf0, 0x00},
	T: {0xa0, 0x00, 0xf0},
	S: {0x00, 0xf0, 0x00},
	Z: {0xf0, 0x00, 0x00},
	J: {0x00, 0x00, 0xf0},
	L: {0xf0, 0xa0, 0x00},
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Shape returns a fresh copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		return nil
	}
	return ShapeFromInts(kindShapes[k])
}

// Color returns the display color for the kind.
func (k Kind) Color() Color {
	if !k.Valid() {
		return Color{}
	}
	return kindColors[k]
}

// Color is an 8-bit RGB triple.
type Color [3]uint8

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// ToRGBA converts to an opaque image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}
