package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingScheduler remembers every request and cancellation.
type recordingScheduler struct {
	next     FrameID
	requests []FrameID
	cancels  []FrameID
}

func (s *recordingScheduler) RequestFrame() FrameID {
	s.next++
	s.requests = append(s.requests, s.next)
	return s.next
}

func (s *recordingScheduler) CancelFrame(id FrameID) {
	s.cancels = append(s.cancels, id)
}

// newTestEngine builds an engine whose first active piece is the second kind
// given (the first becomes the preview).
func newTestEngine(kinds ...Kind) (*Engine, *FrameSlot) {
	slot := &FrameSlot{}
	return NewEngine(DefaultRules(), NewSequenceGenerator(10, kinds...), slot), slot
}

// step delivers a tick only if the engine asked for one, like a frame driver.
func step(e *Engine, slot *FrameSlot, now time.Duration) {
	if _, ok := slot.Take(); ok {
		e.Tick(now)
	}
}

func fillRowExcept(b Board, y int, gaps ...int) {
	for x := range b[y] {
		b[y][x] = 1
	}
	for _, x := range gaps {
		b[y][x] = Empty
	}
}

func TestNewEngineIsIdle(t *testing.T) {
	e, slot := newTestEngine(KindI, KindO)

	assert.Equal(t, StatusIdle, e.Status())
	assert.False(t, slot.Pending())
	assert.False(t, e.Apply(InputLeft))
	assert.Equal(t, StatusIdle, e.Tick(time.Second))

	snap := e.Snapshot()
	assert.Equal(t, 20, snap.Board.Rows())
	assert.Equal(t, 10, snap.Board.Cols())
	assert.Zero(t, snap.Board.Filled())
	assert.Equal(t, 800*time.Millisecond, snap.Interval)
}

func TestStartSpawnsPreviewThenActive(t *testing.T) {
	e, slot := newTestEngine(KindI, KindO, KindT)
	e.Start(0)

	snap := e.Snapshot()
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, KindO, snap.Active.Kind)
	assert.Equal(t, KindI, snap.Next.Kind)
	assert.Equal(t, 4, snap.Active.X)
	assert.Equal(t, 0, snap.Active.Y)
	assert.True(t, slot.Pending())
}

func TestStartCancelsPreviousLoop(t *testing.T) {
	sched := &recordingScheduler{}
	e := NewEngine(DefaultRules(), NewSequenceGenerator(10, KindT), sched)

	e.Start(0)
	e.Apply(InputDown)
	e.Start(time.Second)

	assert.Equal(t, []FrameID{1, 2}, sched.requests)
	assert.Equal(t, []FrameID{1}, sched.cancels)
	assert.Zero(t, e.Snapshot().Score, "restart zeroes the score")
	assert.Equal(t, 0, e.Snapshot().Active.Y)
}

func TestTickDropsOnlyAfterInterval(t *testing.T) {
	e, slot := newTestEngine(KindI, KindO)
	e.Start(0)

	step(e, slot, 800*time.Millisecond)
	assert.Equal(t, 0, e.Snapshot().Active.Y, "elapsed equal to the interval does not drop")
	assert.True(t, slot.Pending())

	step(e, slot, 801*time.Millisecond)
	snap := e.Snapshot()
	assert.Equal(t, 1, snap.Active.Y)
	assert.Equal(t, StatusRunning, snap.Status)

	step(e, slot, 1500*time.Millisecond)
	assert.Equal(t, 1, e.Snapshot().Active.Y, "timer restarts from the last drop")
}

func TestMovesStopAtWalls(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO)
	e.Start(0)

	for i := 0; i < 4; i++ {
		require.True(t, e.Apply(InputLeft))
	}
	assert.False(t, e.Apply(InputLeft))
	assert.Equal(t, 0, e.Snapshot().Active.X)

	for i := 0; i < 8; i++ {
		require.True(t, e.Apply(InputRight))
	}
	assert.False(t, e.Apply(InputRight))
	assert.Equal(t, 8, e.Snapshot().Active.X)
}

func TestSoftDropAwardsPoints(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO)
	e.Start(0)

	assert.True(t, e.Apply(InputDown))
	assert.True(t, e.Apply(InputDown))

	snap := e.Snapshot()
	assert.Equal(t, 2, snap.Active.Y)
	assert.Equal(t, 2*DefaultPoints().SoftDrop, snap.Score)
}

func TestRotateIsRejectedAgainstWall(t *testing.T) {
	e, _ := newTestEngine(KindI, KindT)
	e.Start(0)

	require.True(t, e.Apply(InputRotate))
	for i := 0; i < 4; i++ {
		require.True(t, e.Apply(InputLeft))
	}
	require.False(t, e.Apply(InputLeft))
	rotated := e.Snapshot().Active
	assert.Equal(t, -1, rotated.X)

	assert.False(t, e.Apply(InputRotate))
	assert.True(t, rotated.Shape.Equal(e.Snapshot().Active.Shape))
}

func TestHardDropLocksAndPromotesNext(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO, KindT)
	e.Start(0)

	assert.True(t, e.Apply(InputHardDrop))

	snap := e.Snapshot()
	assert.Equal(t, 18*DefaultPoints().HardDrop, snap.Score)
	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, int(KindO), snap.Board[c[1]][c[0]], "cell %v", c)
	}
	assert.Equal(t, 4, snap.Board.Filled())
	assert.Equal(t, KindI, snap.Active.Kind)
	assert.Equal(t, KindT, snap.Next.Kind)
	assert.Equal(t, StatusRunning, snap.Status)
}

func TestDropUntilLandedFreezesAndSpawnsNext(t *testing.T) {
	e, slot := newTestEngine(KindI, KindO, KindT)
	e.Start(0)

	now := time.Duration(0)
	for i := 0; i < 100 && e.Snapshot().Active.Kind == KindO; i++ {
		now += time.Second
		step(e, slot, now)
	}

	snap := e.Snapshot()
	require.Equal(t, KindI, snap.Active.Kind)
	assert.Equal(t, 3, snap.Active.X)
	assert.Equal(t, 0, snap.Active.Y)
	assert.Equal(t, KindT, snap.Next.Kind)
	assert.Equal(t, int(KindO), snap.Board[18][4])
	assert.Equal(t, int(KindO), snap.Board[19][5])
	assert.Equal(t, 4, snap.Board.Filled())
	assert.Zero(t, snap.Score, "gravity awards no points")
}

func TestLockAtSpawnRowEndsGame(t *testing.T) {
	e, slot := newTestEngine(KindI, KindO)
	e.Start(0)
	e.board[2][4] = 1

	step(e, slot, time.Second)

	snap := e.Snapshot()
	require.Equal(t, StatusGameOver, snap.Status)
	assert.False(t, slot.Pending())
	assert.Equal(t, int(KindO), snap.Board[0][4], "the last piece is frozen in place")

	assert.Equal(t, StatusGameOver, e.Tick(10*time.Second))
	assert.False(t, e.Apply(InputLeft))
	assert.False(t, e.Apply(InputHardDrop))
	assert.Equal(t, snap.Board, e.Snapshot().Board)
}

func TestHardDropAtSpawnRowEndsGame(t *testing.T) {
	sched := &recordingScheduler{}
	e := NewEngine(DefaultRules(), NewSequenceGenerator(10, KindI, KindO), sched)
	e.Start(0)
	e.board[2][5] = 1

	e.Apply(InputHardDrop)

	assert.Equal(t, StatusGameOver, e.Status())
	assert.Zero(t, e.Snapshot().Score)
	assert.Equal(t, []FrameID{1}, sched.cancels)
}

func TestQuitEndsGame(t *testing.T) {
	sched := &recordingScheduler{}
	e := NewEngine(DefaultRules(), NewSequenceGenerator(10, KindT), sched)
	e.Start(0)

	assert.True(t, e.Apply(InputQuit))
	assert.Equal(t, StatusGameOver, e.Status())
	assert.Equal(t, []FrameID{1}, sched.cancels)
}

func TestClearSingleLine(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO, KindT)
	e.Start(0)
	fillRowExcept(e.board, 19, 4, 5)

	e.Apply(InputHardDrop)

	snap := e.Snapshot()
	assert.Equal(t, 18*DefaultPoints().HardDrop+DefaultPoints().Single, snap.Score)
	assert.Equal(t, 1, snap.Lines)
	assert.Equal(t, 1, snap.LinesCleared)
	assert.Equal(t, 20, snap.Board.Rows())
	assert.Equal(t, []int{0, 0, 0, 0, 4, 4, 0, 0, 0, 0}, snap.Board[19], "row above falls into the cleared row")
	assert.Equal(t, make([]int, 10), snap.Board[0])
	assert.Equal(t, 2, snap.Board.Filled())
}

func TestLevelUpCarriesOverflow(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO, KindT)
	e.Start(0)
	e.lines = 9
	fillRowExcept(e.board, 18, 4, 5)
	fillRowExcept(e.board, 19, 4, 5)

	e.Apply(InputHardDrop)

	snap := e.Snapshot()
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 1, snap.Lines, "overflow carries into the next level")
	assert.Equal(t, 720*time.Millisecond, snap.Interval)
	assert.Equal(t, 18*DefaultPoints().HardDrop+DefaultPoints().Double, snap.Score, "clear is scored at the old level")
	assert.Zero(t, snap.Board.Filled())
}

func TestLineClearScalesWithLevel(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO, KindT)
	e.Start(0)
	e.level = 2
	fillRowExcept(e.board, 19, 4, 5)

	e.Apply(InputHardDrop)

	assert.Equal(t, 18*DefaultPoints().HardDrop+3*DefaultPoints().Single, e.Snapshot().Score)
	assert.Equal(t, 2, e.Snapshot().Level)
}

func TestIntervalForClampsToTable(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, 800*time.Millisecond, r.IntervalFor(0))
	assert.Equal(t, 30*time.Millisecond, r.IntervalFor(20))
	assert.Equal(t, 30*time.Millisecond, r.IntervalFor(99))
	assert.Equal(t, 800*time.Millisecond, r.IntervalFor(-1))
}

func TestSnapshotIsDetached(t *testing.T) {
	e, _ := newTestEngine(KindI, KindO)
	e.Start(0)

	snap := e.Snapshot()
	snap.Board[10][3] = 7
	snap.Active.Shape[0][0] = 9

	fresh := e.Snapshot()
	assert.Equal(t, Empty, fresh.Board[10][3])
	assert.Equal(t, 4, fresh.Active.Shape[0][0])
}

func TestResetReturnsToIdle(t *testing.T) {
	sched := &recordingScheduler{}
	e := NewEngine(DefaultRules(), NewSequenceGenerator(10, KindO), sched)
	e.Start(0)
	e.Apply(InputHardDrop)

	e.Reset()

	snap := e.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Board.Filled())
	assert.Equal(t, []FrameID{1}, sched.cancels)
}
