package tetris

// Piece is a tetromino with a board-relative top-left origin.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece builds a piece of the given kind in its spawn orientation,
// centered horizontally on the top row.
func NewPiece(k Kind) Piece {
	shape := k.Shape()
	return Piece{
		Kind:  k,
		Shape: shape,
		X:     SpawnX(shape),
		Y:     0,
	}
}

// SpawnX is the column that centers shape on the board.
func SpawnX(shape Shape) int {
	return Cols/2 - shape.Width()/2
}

// Color is the display color of the piece's kind.
func (p Piece) Color() Color {
	return p.Kind.Color()
}

// Clone returns a copy that shares no shape storage with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns a copy translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
