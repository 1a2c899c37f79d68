package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T, board *Board, mode GameOverMode, kinds ...Kind) (*Simulation, *recorder) {
	t.Helper()
	s := NewSimulation(Options{
		Source:       NewSequenceSource(kinds...),
		Board:        board,
		GameOverMode: mode,
	})
	rec := &recorder{}
	s.Subscribe(rec)
	return s, rec
}

// towerBoard fills columns 4 and 5 from row 2 down, so an O piece locks at
// the spawn point and the next one cannot enter.
func towerBoard() *Board {
	b := NewBoard()
	for y := 2; y < Rows; y++ {
		b.Set(4, y, CellOf(Z))
		b.Set(5, y, CellOf(Z))
	}
	return b
}

func TestNewSimulation(t *testing.T) {
	s, rec := newTestSimulation(t, nil, GameOverHalt, T)

	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, T, s.Piece().Kind)
	assert.Equal(t, 4, s.Piece().X)
	assert.Equal(t, 0, s.Piece().Y)
	assert.Equal(t, 1, s.Pieces())
	assert.Equal(t, 1, s.Level())
	assert.Empty(t, rec.events, "first spawn is not replayed to late subscribers")

	s = NewSimulation(Options{})
	assert.Equal(t, StateFalling, s.State())
	assert.True(t, s.Piece().Kind.Valid())
}

func TestSpawnPosition(t *testing.T) {
	want := map[Kind]int{I: 3, O: 4, T: 4, S: 4, Z: 4, J: 4, L: 4}
	for _, k := range Kinds {
		assert.Equal(t, want[k], NewPiece(k).X, k.String())
	}
}

func TestTryMove(t *testing.T) {
	t.Run("sideways", func(t *testing.T) {
		s, rec := newTestSimulation(t, nil, GameOverHalt, T)

		assert.True(t, s.TryMove(-1, 0))
		assert.Equal(t, 3, s.Piece().X)
		require.Len(t, rec.events, 1)
		assert.Equal(t, Event{Kind: EventMoved, Piece: T, X: 3, Y: 0, DX: -1}, rec.events[0])
	})

	t.Run("blocked at left wall changes nothing", func(t *testing.T) {
		s, rec := newTestSimulation(t, nil, GameOverHalt, T)
		for s.TryMove(-1, 0) {
		}
		assert.Equal(t, 0, s.Piece().X)
		rec.events = nil

		assert.False(t, s.TryMove(-1, 0))
		assert.Equal(t, 0, s.Piece().X)
		assert.Equal(t, StateFalling, s.State())
		assert.Equal(t, 1, s.Pieces())
		assert.Empty(t, rec.events)
	})

	t.Run("vertical I against right wall does not lock", func(t *testing.T) {
		s, _ := newTestSimulation(t, nil, GameOverHalt, I)
		require.True(t, s.Rotate())
		for s.TryMove(1, 0) {
		}
		require.Equal(t, 9, s.Piece().X)

		assert.False(t, s.TryMove(1, 0))
		assert.Equal(t, 9, s.Piece().X)
		assert.Equal(t, 1, s.Pieces())
		assert.Equal(t, [Rows][Cols]Cell{}, s.Snapshot().Cells)
	})

	t.Run("soft drop to the floor locks", func(t *testing.T) {
		s, rec := newTestSimulation(t, nil, GameOverHalt, O, T)
		for s.TryMove(-1, 0) {
		}

		moves := 0
		for s.Tick() {
			moves++
		}
		assert.Equal(t, 18, moves)

		snap := s.Snapshot()
		assert.Equal(t, CellOf(O), snap.Cells[19][0])
		assert.Equal(t, CellOf(O), snap.Cells[18][1])
		assert.Equal(t, T, s.Piece().Kind)
		assert.Equal(t, 2, s.Pieces())

		last := rec.kinds()[len(rec.events)-2:]
		assert.Equal(t, []EventKind{EventLocked, EventSpawned}, last)
	})
}

func TestLineClear(t *testing.T) {
	b := NewBoard()
	fillRow(b, Rows-1, 3, 4, 5, 6)
	s, rec := newTestSimulation(t, b, GameOverHalt, I)

	assert.True(t, s.HardDrop())

	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, [Rows][Cols]Cell{}, s.Snapshot().Cells)

	var tail []EventKind
	for _, e := range rec.events {
		if e.Kind != EventMoved {
			tail = append(tail, e.Kind)
		}
	}
	assert.Equal(t, []EventKind{
		EventLocked,
		EventLinesCleared,
		EventScoreChanged,
		EventSpawned,
		EventHardDropped,
	}, tail)

	for _, e := range rec.events {
		switch e.Kind {
		case EventLinesCleared:
			assert.Equal(t, 1, e.Lines)
		case EventScoreChanged:
			assert.Equal(t, 100, e.Score)
		case EventHardDropped:
			assert.Equal(t, 19, e.DY)
			assert.Equal(t, 19, e.Y)
		}
	}
}

func TestMultiLineScore(t *testing.T) {
	b := NewBoard()
	for y := Rows - 4; y < Rows; y++ {
		fillRow(b, y, 0)
	}
	s, _ := newTestSimulation(t, b, GameOverHalt, I)
	require.True(t, s.Rotate())
	for s.TryMove(-1, 0) {
	}

	s.HardDrop()

	assert.Equal(t, 4, s.Lines())
	assert.Equal(t, 4*PointsPerLine, s.Score())
}

func TestSimulationRotate(t *testing.T) {
	t.Run("turns in place", func(t *testing.T) {
		s, rec := newTestSimulation(t, nil, GameOverHalt, T)
		require.True(t, s.TryMove(0, 1))

		assert.True(t, s.Rotate())
		assert.True(t, Rotate(T.Shape()).Equal(s.Piece().Shape))
		assert.Equal(t, 4, s.Piece().X)
		assert.Equal(t, 1, s.Piece().Y)
		assert.Equal(t, EventRotated, rec.events[len(rec.events)-1].Kind)
	})

	t.Run("rejected at the wall", func(t *testing.T) {
		s, _ := newTestSimulation(t, nil, GameOverHalt, I)
		require.True(t, s.Rotate())
		for s.TryMove(1, 0) {
		}
		before := s.Piece()

		assert.False(t, s.Rotate())
		assert.Equal(t, before, s.Piece())
	})
}

func TestHardDrop(t *testing.T) {
	t.Run("returns false when already resting", func(t *testing.T) {
		b := NewBoard()
		for x := 3; x < 7; x++ {
			b.Set(x, 1, CellOf(S))
		}
		s, rec := newTestSimulation(t, b, GameOverHalt, I, O)

		assert.False(t, s.HardDrop())
		assert.Equal(t, CellOf(I), s.Snapshot().Cells[0][3])
		assert.Equal(t, 1, s.Pieces())

		dropped := rec.events[len(rec.events)-1]
		assert.Equal(t, EventHardDropped, dropped.Kind)
		assert.Equal(t, 0, dropped.DY)
	})

	t.Run("lands on the stack", func(t *testing.T) {
		b := NewBoard()
		b.Set(4, 15, CellOf(J))
		s, _ := newTestSimulation(t, b, GameOverHalt, O, O)

		assert.True(t, s.HardDrop())
		cells := s.Snapshot().Cells
		assert.Equal(t, CellOf(O), cells[13][4])
		assert.Equal(t, CellOf(O), cells[14][5])
		assert.Equal(t, Empty, cells[15][5])
	})
}

func TestGhostY(t *testing.T) {
	s, rec := newTestSimulation(t, nil, GameOverHalt, I)
	before := s.Piece()

	assert.Equal(t, 19, s.GhostY())
	assert.Equal(t, 19, s.GhostY())
	assert.Equal(t, before, s.Piece())
	assert.Empty(t, rec.events)

	require.True(t, s.Rotate())
	assert.Equal(t, 16, s.GhostY())
}

func TestGhostYAfterGameOver(t *testing.T) {
	board := NewBoard()
	board.Set(4, 0, CellOf(I))
	s, _ := newTestSimulation(t, board, GameOverHalt, O)
	require.True(t, s.GameOver())

	assert.Equal(t, 0, s.GhostY(), "ghost does not fall through locked cells")
	assert.Equal(t, 0, s.Snapshot().GhostY)
}

func TestGameOver(t *testing.T) {
	t.Run("halt", func(t *testing.T) {
		s, rec := newTestSimulation(t, towerBoard(), GameOverHalt, O)
		s.score = 300

		assert.False(t, s.Tick())

		assert.True(t, s.GameOver())
		assert.Equal(t, StateGameOver, s.State())
		last := rec.events[len(rec.events)-1]
		assert.Equal(t, EventGameOver, last.Kind)
		assert.Equal(t, 300, last.Score)

		assert.False(t, s.Tick())
		assert.False(t, s.TryMove(1, 0))
		assert.False(t, s.Rotate())
		assert.False(t, s.HardDrop())
		assert.Equal(t, 300, s.Score())
		assert.Equal(t, 1, s.Pieces())
	})

	t.Run("reset", func(t *testing.T) {
		s, rec := newTestSimulation(t, towerBoard(), GameOverReset, O)
		s.score, s.lines = 300, 3

		assert.False(t, s.Tick())

		assert.False(t, s.GameOver())
		assert.Equal(t, StateFalling, s.State())
		assert.Equal(t, 0, s.Score())
		assert.Equal(t, 0, s.Lines())
		assert.Equal(t, 1, s.Pieces())
		assert.Equal(t, [Rows][Cols]Cell{}, s.Snapshot().Cells)
		assert.Equal(t, O, s.Piece().Kind)
		assert.Equal(t, 4, s.Piece().X)
		assert.Equal(t, 0, s.Piece().Y)

		assert.Equal(t, []EventKind{
			EventLocked,
			EventReset,
			EventScoreChanged,
			EventSpawned,
		}, rec.kinds())
		assert.Equal(t, 0, rec.events[2].Score)

		assert.True(t, s.Tick())
	})
}

func TestRestart(t *testing.T) {
	s, rec := newTestSimulation(t, towerBoard(), GameOverHalt, O)
	s.score = 500
	s.Tick()
	require.True(t, s.GameOver())
	rec.events = nil

	s.Restart()

	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Pieces())
	assert.Equal(t, [Rows][Cols]Cell{}, s.Snapshot().Cells)
	assert.Equal(t, []EventKind{EventReset, EventSpawned}, rec.kinds())
}

func TestApply(t *testing.T) {
	s, rec := newTestSimulation(t, nil, GameOverHalt, T)

	assert.True(t, s.Apply(CommandMoveLeft))
	assert.Equal(t, 3, s.Piece().X)
	assert.True(t, s.Apply(CommandMoveRight))
	assert.Equal(t, 4, s.Piece().X)
	assert.True(t, s.Apply(CommandSoftDrop))
	assert.Equal(t, 1, s.Piece().Y)
	assert.True(t, s.Apply(CommandRotate))
	assert.True(t, s.Apply(CommandHardDrop))
	assert.Equal(t, 2, s.Pieces())
	assert.False(t, s.Apply(Command(0)))

	assert.True(t, s.Apply(CommandRestart))
	assert.Equal(t, EventReset, rec.events[len(rec.events)-2].Kind)
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSimulation(t, nil, GameOverHalt, S)
	snap := s.Snapshot()

	assert.Equal(t, S, snap.Piece.Kind)
	assert.Equal(t, 18, snap.GhostY)
	assert.False(t, snap.GameOver())

	snap.Cells[0][0] = CellOf(T)
	snap.Piece.Shape[0][0] = true
	assert.Equal(t, Empty, s.Snapshot().Cells[0][0])
	assert.True(t, S.Shape().Equal(s.Piece().Shape))

	composite := s.Snapshot().Composite()
	assert.Equal(t, CellOf(S), composite[0][5])
	assert.Equal(t, CellOf(S), composite[1][4])
	assert.Equal(t, Empty, composite[0][4])

	var ghost [][2]int
	for x, y := range s.Snapshot().GhostCells() {
		ghost = append(ghost, [2]int{x, y})
	}
	assert.ElementsMatch(t, [][2]int{{5, 18}, {6, 18}, {4, 19}, {5, 19}}, ghost)
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, time.Second},
		{1, time.Second},
		{2, 900 * time.Millisecond},
		{5, 600 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{15, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TickInterval(tt.level), "level %d", tt.level)
	}

	s := NewSimulation(Options{Level: 3})
	assert.Equal(t, 800*time.Millisecond, s.TickInterval())
}
