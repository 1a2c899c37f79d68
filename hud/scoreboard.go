// Package hud keeps the heads-up display numbers current from simulation
// events and formats them for any frontend.
package hud

import (
	"sync"

	"github.com/plus3/tetris/tetris"
	"golang.org/x/text/message"
)

// Stats is what the HUD shows.
type Stats struct {
	Score    int
	Lines    int
	Level    int
	Pieces   int
	Best     int
	Games    int
	GameOver bool
}

// ScoreBoard is a tetris.Observer that tracks Stats. Reads are safe from
// any goroutine.
type ScoreBoard struct {
	mu    sync.Mutex
	stats Stats
}

// NewScoreBoard starts from the simulation's current numbers.
func NewScoreBoard(sim *tetris.Simulation) *ScoreBoard {
	return &ScoreBoard{stats: Stats{
		Score:    sim.Score(),
		Lines:    sim.Lines(),
		Level:    sim.Level(),
		Pieces:   sim.Pieces(),
		Best:     sim.Score(),
		Games:    1,
		GameOver: sim.GameOver(),
	}}
}

// Observe implements tetris.Observer.
func (b *ScoreBoard) Observe(e tetris.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch e.Kind {
	case tetris.EventSpawned:
		b.stats.Pieces++
	case tetris.EventLinesCleared:
		b.stats.Lines += e.Lines
	case tetris.EventScoreChanged:
		b.stats.Score = e.Score
		b.stats.Best = max(b.stats.Best, e.Score)
	case tetris.EventGameOver:
		b.stats.GameOver = true
		b.stats.Score = e.Score
	case tetris.EventReset:
		b.stats.Score, b.stats.Lines, b.stats.Pieces = 0, 0, 0
		b.stats.GameOver = false
		b.stats.Games++
	}
}

// Stats returns a copy of the current numbers.
func (b *ScoreBoard) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// Lines renders the stats panel, one entry per line.
func (s Stats) Lines(p *message.Printer) []string {
	lines := []string{
		p.Sprintf(KeyScore, s.Score),
		p.Sprintf(KeyBest, s.Best),
		p.Sprintf(KeyLines, s.Lines),
		p.Sprintf(KeyLevel, s.Level),
		p.Sprintf(KeyPieces, s.Pieces),
	}
	if s.GameOver {
		lines = append(lines, "", p.Sprintf(KeyGameOver), p.Sprintf(KeyRestart))
	}
	return lines
}
