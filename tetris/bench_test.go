package tetris

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkClearFullRows(b *testing.B) {
	board := NewBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := Rows - 4; y < Rows; y++ {
			fillRow(board, y)
		}
		board.ClearFullRows()
	}
}

func BenchmarkFits(b *testing.B) {
	board := NewBoard()
	fillRow(board, Rows-1, 0)
	shape := T.Shape()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for x := -1; x < Cols; x++ {
			board.Fits(shape, x, Rows-2)
		}
	}
}

func BenchmarkHardDrop(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	s := NewSimulation(Options{Source: NewBagSource(rng)})
	s.Subscribe(ObserverFunc(func(Event) {}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.GameOver() {
			s.Restart()
		}
		for range rng.IntN(4) {
			s.Rotate()
		}
		dx := rng.IntN(Cols) - Cols/2
		for range abs(dx) {
			s.TryMove(sign(dx), 0)
		}
		s.HardDrop()
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
