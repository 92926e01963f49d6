package core

import "time"

// Status is the lifecycle state of the engine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusGameOver
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is a symbolic player command.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputDown
	InputRotate
	InputHardDrop
	InputQuit
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputDown:
		return "Down"
	case InputRotate:
		return "Rotate"
	case InputHardDrop:
		return "HardDrop"
	case InputQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Clock tracks drop pacing. Start is the timestamp of the last drop, Elapsed
// the time since then as of the latest tick, Interval the current threshold.
type Clock struct {
	Start    time.Duration
	Elapsed  time.Duration
	Interval time.Duration
}

// Engine owns one game: board, active and next piece, counters and clock.
// It is driven from a single call stream and is not safe for concurrent use.
type Engine struct {
	rules Rules
	gen   Generator
	sched Scheduler

	board  Board
	active Piece
	next   Piece
	clock  Clock

	score   int
	lines   int // lines cleared in the current level
	level   int
	cleared int // lines cleared this game

	status       Status
	frame        FrameID
	framePending bool
}

// NewEngine creates an idle engine with an empty board.
func NewEngine(rules Rules, gen Generator, sched Scheduler) *Engine {
	e := &Engine{
		rules: rules,
		gen:   gen,
		sched: sched,
	}
	e.Reset()
	return e
}

// Reset zeroes the counters, allocates an empty board, resets the clock and
// returns the engine to Idle.
func (e *Engine) Reset() {
	e.cancelFrame()
	e.score = 0
	e.lines = 0
	e.level = 0
	e.cleared = 0
	e.board = NewBoard(e.rules.Cols, e.rules.Rows)
	e.active = Piece{}
	e.next = Piece{}
	e.clock = Clock{Interval: e.rules.IntervalFor(0)}
	e.status = StatusIdle
}

// Start begins a new game at timestamp now. Any loop still scheduled from an
// earlier game is cancelled first.
func (e *Engine) Start(now time.Duration) {
	e.Reset()
	e.next = e.gen.Next()
	e.active = e.gen.Next()
	e.clock.Start = now
	e.status = StatusRunning
	e.requestFrame()
}

// Tick advances the game to timestamp now and returns the resulting status.
// When more than one drop interval has passed since the last drop the piece
// falls one row. Ticks outside Running change nothing.
func (e *Engine) Tick(now time.Duration) Status {
	if e.status != StatusRunning {
		return e.status
	}
	e.framePending = false

	e.clock.Elapsed = now - e.clock.Start
	if e.clock.Elapsed > e.clock.Interval {
		e.clock.Start = now
		if !e.drop() {
			e.GameOver()
			return e.status
		}
	}

	e.requestFrame()
	return e.status
}

// Apply executes a player input and reports whether the game state changed.
// Inputs are ignored unless the game is running.
func (e *Engine) Apply(in Input) bool {
	if e.status != StatusRunning {
		return false
	}

	switch in {
	case InputLeft:
		return e.try(e.active.Moved(-1, 0))
	case InputRight:
		return e.try(e.active.Moved(1, 0))
	case InputDown:
		if e.try(e.active.Moved(0, 1)) {
			e.score += e.rules.Points.SoftDrop
			return true
		}
		return false
	case InputRotate:
		return e.try(Rotate(e.active))
	case InputHardDrop:
		e.hardDrop()
		return true
	case InputQuit:
		e.GameOver()
		return true
	}
	return false
}

// GameOver stops the loop and freezes the state for display.
func (e *Engine) GameOver() {
	e.cancelFrame()
	e.status = StatusGameOver
}

// try commits candidate as the active piece if it is a legal position.
func (e *Engine) try(candidate Piece) bool {
	if !IsValidPosition(candidate, e.board) {
		return false
	}
	e.active = candidate
	return true
}

// hardDrop moves the piece down until it lands, then locks it.
func (e *Engine) hardDrop() {
	for e.try(e.active.Moved(0, 1)) {
		e.score += e.rules.Points.HardDrop
	}
	if !e.drop() {
		e.GameOver()
	}
}

// drop moves the active piece one row down. If it cannot move it is frozen,
// full rows are cleared and the next piece takes over. It returns false when
// the piece locked on the spawn row, which ends the game.
func (e *Engine) drop() bool {
	if e.try(e.active.Moved(0, 1)) {
		return true
	}

	e.board.freeze(e.active)
	e.clearLines()

	if e.active.Y == 0 {
		return false
	}

	e.active = e.next
	e.next = e.gen.Next()
	return true
}

// clearLines removes every full row, scanning top to bottom, and applies the
// score and level progression. It returns the number of rows removed.
func (e *Engine) clearLines() int {
	n := 0
	for y := 0; y < e.board.Rows(); y++ {
		if e.board.RowFull(y) {
			e.board.removeRow(y)
			n++
		}
	}
	if n == 0 {
		return 0
	}

	e.score += e.rules.Points.LineClear(n, e.level)
	e.lines += n
	e.cleared += n
	if e.rules.LinesPerLevel > 0 && e.lines >= e.rules.LinesPerLevel {
		e.level++
		e.lines -= e.rules.LinesPerLevel
		e.clock.Interval = e.rules.IntervalFor(e.level)
	}
	return n
}

func (e *Engine) requestFrame() {
	if e.sched == nil {
		return
	}
	e.frame = e.sched.RequestFrame()
	e.framePending = true
}

func (e *Engine) cancelFrame() {
	if e.sched == nil || !e.framePending {
		return
	}
	e.sched.CancelFrame(e.frame)
	e.framePending = false
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}
