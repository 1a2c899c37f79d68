package tetris

import (
	"iter"
	"strings"
)

// Shape is a row-major occupancy matrix. All rows have the same length.
type Shape [][]bool

// ShapeFromInts builds a shape from a 0/1 matrix.
func ShapeFromInts(rows [][]int) Shape {
	shape := make(Shape, len(rows))
	for i, row := range rows {
		shape[i] = make([]bool, len(row))
		for j, v := range row {
			shape[i][j] = v != 0
		}
	}
	return shape
}

// Width is the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height is the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	for i, row := range s {
		clone[i] = make([]bool, len(row))
		copy(clone[i], row)
	}
	return clone
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Cells yields the (col, row) offset of every occupied cell in row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row, line := range s {
			for col, filled := range line {
				if filled && !yield(col, row) {
					return
				}
			}
		}
	}
}

// String renders the shape with '#' for occupied and '.' for empty cells,
// one line per row.
func (s Shape) String() string {
	var sb strings.Builder
	for i, row := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Rotate returns the shape turned 90 degrees clockwise: the matrix is
// transposed and every resulting row reversed. The result is anchored at
// the same top-left origin, so a 1x4 bar becomes a 4x1 column hanging from
// the origin rather than pivoting around its center. Four rotations always
// return the original matrix.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := range w {
		rotated[i] = make([]bool, h)
		for j := range h {
			rotated[i][j] = s[h-1-j][i]
		}
	}
	return rotated
}
