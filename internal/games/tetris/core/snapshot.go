package core

import "time"

// Snapshot is a read-only copy of the engine state for renderers and tests.
type Snapshot struct {
	Status       Status
	Board        Board
	Active       Piece
	Next         Piece
	Score        int
	Lines        int // lines toward the next level
	Level        int
	LinesCleared int // total for this game
	Interval     time.Duration
	Elapsed      time.Duration
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:       e.status,
		Board:        e.board.Clone(),
		Active:       e.active.Clone(),
		Next:         e.next.Clone(),
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		LinesCleared: e.cleared,
		Interval:     e.clock.Interval,
		Elapsed:      e.clock.Elapsed,
	}
}

// Stats are the counters shown in a HUD.
type Stats struct {
	Score        int
	Lines        int
	Level        int
	LinesCleared int
}

// Stats returns the counters without copying the board.
func (e *Engine) Stats() Stats {
	return Stats{
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		LinesCleared: e.cleared,
	}
}
