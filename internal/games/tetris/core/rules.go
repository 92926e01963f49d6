package core

import "time"

// Rules are the game-design constants the engine consumes.
type Rules struct {
	Cols          int
	Rows          int
	DropIntervals []time.Duration // indexed by level
	LinesPerLevel int
	Points        Points
}

// DefaultRules returns a 10x20 board with the classic pacing table.
func DefaultRules() Rules {
	ms := []int{800, 720, 630, 550, 470, 380, 300, 220, 130, 100, 80, 80, 80, 70, 70, 70, 50, 50, 50, 30, 30}
	intervals := make([]time.Duration, len(ms))
	for i, v := range ms {
		intervals[i] = time.Duration(v) * time.Millisecond
	}
	return Rules{
		Cols:          10,
		Rows:          20,
		DropIntervals: intervals,
		LinesPerLevel: 10,
		Points:        DefaultPoints(),
	}
}

// IntervalFor returns the drop interval for level. Levels past the end of the
// table keep the last interval.
func (r Rules) IntervalFor(level int) time.Duration {
	if len(r.DropIntervals) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(r.DropIntervals) {
		level = len(r.DropIntervals) - 1
	}
	return r.DropIntervals[level]
}
