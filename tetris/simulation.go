package tetris

import (
	"fmt"
	"time"
)

// PointsPerLine is the score awarded for each cleared row.
const PointsPerLine = 100

const (
	baseTickInterval = 1000 * time.Millisecond
	levelTickStep    = 100 * time.Millisecond
	minTickInterval  = 100 * time.Millisecond
)

// State is the simulation's position in its spawn/fall/lock cycle.
// Operations run to completion, so callers only ever observe StateFalling
// or StateGameOver; the other two are held while an operation is running.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// GameOverMode selects what happens when a new piece spawns into occupied
// cells.
type GameOverMode uint8

const (
	// GameOverHalt stops the game until Restart.
	GameOverHalt GameOverMode = iota
	// GameOverReset wipes the board and score and keeps playing with the
	// piece that just spawned.
	GameOverReset
)

func (m GameOverMode) String() string {
	switch m {
	case GameOverHalt:
		return "halt"
	case GameOverReset:
		return "reset"
	default:
		return fmt.Sprintf("GameOverMode(%d)", uint8(m))
	}
}

// Options configures a Simulation. The zero value is usable.
type Options struct {
	// Source picks spawned kinds. Defaults to a uniform RandomSource.
	Source Source
	// Board is the starting playfield. Defaults to an empty board.
	Board *Board
	// Level sets the gravity interval. Values below 1 mean 1.
	Level int
	// GameOverMode defaults to GameOverHalt.
	GameOverMode GameOverMode
}

// Simulation owns one game: the board, the falling piece, the score and the
// event bus. It is not safe for concurrent use; one goroutine drives it.
type Simulation struct {
	board  *Board
	piece  Piece
	source Source
	bus    *Bus
	mode   GameOverMode
	state  State
	score  int
	level  int
	lines  int
	pieces int
}

// NewSimulation creates a simulation and spawns its first piece.
func NewSimulation(opts Options) *Simulation {
	s := &Simulation{
		board:  opts.Board,
		source: opts.Source,
		bus:    NewBus(),
		mode:   opts.GameOverMode,
		level:  max(opts.Level, 1),
	}
	if s.board == nil {
		s.board = NewBoard()
	}
	if s.source == nil {
		s.source = NewRandomSource(nil)
	}
	s.spawn()
	s.bus.pending = s.bus.pending[:0]
	return s
}

// Subscribe registers an observer for all future events.
func (s *Simulation) Subscribe(o Observer) SubscriptionId {
	return s.bus.Subscribe(o)
}

// Unsubscribe removes an observer.
func (s *Simulation) Unsubscribe(id SubscriptionId) bool {
	return s.bus.Unsubscribe(id)
}

// Piece returns a copy of the falling piece.
func (s *Simulation) Piece() Piece { return s.piece.Clone() }

func (s *Simulation) State() State   { return s.state }
func (s *Simulation) GameOver() bool { return s.state == StateGameOver }
func (s *Simulation) Score() int     { return s.score }
func (s *Simulation) Level() int     { return s.level }
func (s *Simulation) Lines() int     { return s.lines }

// Pieces counts the pieces that entered the board this game, including the
// falling one.
func (s *Simulation) Pieces() int { return s.pieces }

func (s *Simulation) Mode() GameOverMode { return s.mode }

// TickInterval is the gravity period for the current level:
// 1000ms minus 100ms per level above the first, never below 100ms.
func (s *Simulation) TickInterval() time.Duration {
	return TickInterval(s.level)
}

// TickInterval is the gravity period for level.
func TickInterval(level int) time.Duration {
	interval := baseTickInterval - time.Duration(max(level, 1)-1)*levelTickStep
	return max(interval, minTickInterval)
}

// ValidAt reports whether shape fits on the board at (x, y).
func (s *Simulation) ValidAt(shape Shape, x, y int) bool {
	return s.board.Fits(shape, x, y)
}

// TryMove translates the falling piece by (dx, dy). It returns false if the
// target is blocked. A blocked downward move lands the piece: it is locked,
// full rows are cleared and scored, and the next piece spawns, which may
// end the game. Blocked sideways moves change nothing.
func (s *Simulation) TryMove(dx, dy int) bool {
	defer s.bus.Flush()
	return s.tryMove(dx, dy)
}

// Tick applies one step of gravity.
func (s *Simulation) Tick() bool {
	return s.TryMove(0, 1)
}

// Rotate turns the falling piece clockwise if the rotated shape fits at the
// current origin. There are no wall kicks.
func (s *Simulation) Rotate() bool {
	defer s.bus.Flush()
	if s.state != StateFalling {
		return false
	}
	rotated := Rotate(s.piece.Shape)
	if !s.board.Fits(rotated, s.piece.X, s.piece.Y) {
		return false
	}
	s.piece.Shape = rotated
	s.emit(EventRotated)
	return true
}

// HardDrop moves the piece down until it lands and locks. It reports
// whether the piece moved at least one row first.
func (s *Simulation) HardDrop() bool {
	defer s.bus.Flush()
	if s.state != StateFalling {
		return false
	}
	landed, rows := s.piece, 0
	for s.tryMove(0, 1) {
		landed.Y++
		rows++
	}
	s.bus.Emit(Event{Kind: EventHardDropped, Piece: landed.Kind, X: landed.X, Y: landed.Y, DY: rows})
	return rows > 0
}

// GhostY is the lowest row the falling piece could reach in its current
// column and orientation. It does not change the simulation. Once the game
// is over the piece is not falling and GhostY is its own row.
func (s *Simulation) GhostY() int {
	y := s.piece.Y
	if s.state != StateFalling {
		return y
	}
	for s.board.Fits(s.piece.Shape, s.piece.X, y+1) {
		y++
	}
	return y
}

// Apply runs one input command and reports whether it changed the piece.
func (s *Simulation) Apply(cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return s.TryMove(-1, 0)
	case CommandMoveRight:
		return s.TryMove(1, 0)
	case CommandSoftDrop:
		return s.TryMove(0, 1)
	case CommandRotate:
		return s.Rotate()
	case CommandHardDrop:
		return s.HardDrop()
	case CommandRestart:
		s.Restart()
		return true
	default:
		return false
	}
}

// Restart clears the board and counters and spawns a fresh piece. The
// piece source carries on from where it was.
func (s *Simulation) Restart() {
	defer s.bus.Flush()
	s.board.Reset()
	s.score, s.lines, s.pieces = 0, 0, 0
	s.bus.Emit(Event{Kind: EventReset})
	s.spawn()
}

// Snapshot copies everything a renderer needs.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Cells:  s.board.Grid(),
		Piece:  s.piece.Clone(),
		GhostY: s.GhostY(),
		Score:  s.score,
		Level:  s.level,
		Lines:  s.lines,
		Pieces: s.pieces,
		State:  s.state,
	}
}

func (s *Simulation) tryMove(dx, dy int) bool {
	if s.state != StateFalling {
		return false
	}
	if s.board.Fits(s.piece.Shape, s.piece.X+dx, s.piece.Y+dy) {
		s.piece.X += dx
		s.piece.Y += dy
		s.bus.Emit(Event{Kind: EventMoved, Piece: s.piece.Kind, X: s.piece.X, Y: s.piece.Y, DX: dx, DY: dy})
		return true
	}
	if dy > 0 {
		s.land()
	}
	return false
}

// land locks the piece, resolves line clears, then spawns. Clearing must
// finish first because the spawn check reads the post-clear board.
func (s *Simulation) land() {
	s.state = StateLocking
	s.board.Lock(s.piece)
	s.emit(EventLocked)

	if n := s.board.ClearFullRows(); n > 0 {
		s.lines += n
		s.score += n * PointsPerLine
		s.bus.Emit(Event{Kind: EventLinesCleared, Piece: s.piece.Kind, Lines: n})
		s.bus.Emit(Event{Kind: EventScoreChanged, Score: s.score})
	}
	s.spawn()
}

func (s *Simulation) spawn() {
	s.state = StateSpawning
	s.piece = NewPiece(s.source.Next())

	if s.board.Fits(s.piece.Shape, s.piece.X, s.piece.Y) {
		s.pieces++
		s.state = StateFalling
		s.emit(EventSpawned)
		return
	}

	switch s.mode {
	case GameOverReset:
		s.board.Reset()
		s.score, s.lines, s.pieces = 0, 0, 1
		s.bus.Emit(Event{Kind: EventReset})
		s.bus.Emit(Event{Kind: EventScoreChanged})
		s.state = StateFalling
		s.emit(EventSpawned)
	default:
		s.state = StateGameOver
		s.bus.Emit(Event{Kind: EventGameOver, Piece: s.piece.Kind, X: s.piece.X, Y: s.piece.Y, Score: s.score})
	}
}

func (s *Simulation) emit(kind EventKind) {
	s.bus.Emit(Event{Kind: kind, Piece: s.piece.Kind, X: s.piece.X, Y: s.piece.Y})
}
