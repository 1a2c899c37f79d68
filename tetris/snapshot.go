package tetris

import "iter"

// Snapshot is a read-only copy of the simulation for renderers. Mutating it
// has no effect on the game.
type Snapshot struct {
	Cells  [Rows][Cols]Cell
	Piece  Piece
	GhostY int
	Score  int
	Level  int
	Lines  int
	Pieces int
	State  State
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Composite returns the locked cells with the falling piece drawn over
// them. Piece cells above the top row are left out.
func (s Snapshot) Composite() [Rows][Cols]Cell {
	cells := s.Cells
	cell := CellOf(s.Piece.Kind)
	for col, row := range s.Piece.Shape.Cells() {
		x, y := s.Piece.X+col, s.Piece.Y+row
		if InBounds(x, y) {
			cells[y][x] = cell
		}
	}
	return cells
}

// GhostCells yields the board cells the falling piece would cover at GhostY.
func (s Snapshot) GhostCells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for col, row := range s.Piece.Shape.Cells() {
			x, y := s.Piece.X+col, s.GhostY+row
			if InBounds(x, y) && !yield(x, y) {
				return
			}
		}
	}
}

// String renders the composite grid like Board.String.
func (s Snapshot) String() string {
	cells := s.Composite()
	return gridString(&cells)
}
