package tetris

import "strings"

const (
	Cols = 10
	Rows = 20
)

// Cell is the state of one board square: Empty or the kind that locked there.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// CellOf returns the occupied cell value for a kind.
func CellOf(k Kind) Cell {
	return Cell(k) + 1
}

// Kind returns the kind stored in the cell, or false for Empty.
func (c Cell) Kind() (Kind, bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

// Board is the fixed Cols x Rows playfield. Row 0 is the top.
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds reports whether (x, y) addresses a board cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Cell returns the cell at (x, y). The caller bounds-checks.
func (b *Board) Cell(x, y int) Cell {
	return b.cells[y][x]
}

// Set overwrites the cell at (x, y). The caller bounds-checks.
func (b *Board) Set(x, y int, c Cell) {
	b.cells[y][x] = c
}

// Occupied reports whether the cell at (x, y) is non-empty. The caller
// bounds-checks.
func (b *Board) Occupied(x, y int) bool {
	return b.cells[y][x] != Empty
}

// Fits reports whether shape placed with its top-left at (x, y) stays
// inside the side walls and above the floor without overlapping locked
// cells. Cells above row 0 are always accepted so pieces can enter from
// off screen.
func (b *Board) Fits(shape Shape, x, y int) bool {
	for col, row := range shape.Cells() {
		bx, by := x+col, y+row
		if bx < 0 || bx >= Cols || by >= Rows {
			return false
		}
		if by >= 0 && b.cells[by][bx] != Empty {
			return false
		}
	}
	return true
}

// Lock writes the piece's kind into every board cell it covers. Cells
// outside the visible rows are dropped.
func (b *Board) Lock(p Piece) {
	cell := CellOf(p.Kind)
	for col, row := range p.Shape.Cells() {
		bx, by := p.X+col, p.Y+row
		if !InBounds(bx, by) {
			continue
		}
		b.cells[by][bx] = cell
	}
}

// RowFull reports whether no cell in row y is empty.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down
// and inserting an empty row at the top, and returns how many rows were
// removed. Rows are scanned bottom to top; after a removal the same index
// is checked again because it now holds the row that was above it.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := Rows - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}
		b.removeRow(y)
		cleared++
	}
	return cleared
}

func (b *Board) removeRow(y int) {
	copy(b.cells[1:y+1], b.cells[:y])
	b.cells[0] = [Cols]Cell{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Rows][Cols]Cell{}
}

// Grid returns a copy of all cells.
func (b *Board) Grid() [Rows][Cols]Cell {
	return b.cells
}

// String renders one line per row: '.' for empty cells, the kind letter
// otherwise.
func (b *Board) String() string {
	return gridString(&b.cells)
}

func gridString(cells *[Rows][Cols]Cell) string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for y := range Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Cols {
			kind, ok := cells[y][x].Kind()
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(kind.String())
		}
	}
	return sb.String()
}
