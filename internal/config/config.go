// Package config provides YAML-based rules configuration for the game:
// board size, drop pacing, scoring and the cell color table.
package config

import "time"

// TetrisConfig contains all tunable game-design constants.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Levels LevelsConfig `yaml:"levels"`
	Points PointsConfig `yaml:"points"`
	// Colors maps a cell value to a color name; index 0 is the empty cell.
	Colors []string `yaml:"colors"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// LevelsConfig defines level progression and pacing.
type LevelsConfig struct {
	LinesPerLevel   int   `yaml:"lines_per_level"`
	DropIntervalsMS []int `yaml:"drop_intervals_ms"` // indexed by level
}

// PointsConfig defines score awards.
type PointsConfig struct {
	SoftDrop int `yaml:"soft_drop"` // per row
	HardDrop int `yaml:"hard_drop"` // per row
	Single   int `yaml:"single"`
	Double   int `yaml:"double"`
	Triple   int `yaml:"triple"`
	Tetris   int `yaml:"tetris"`
}

// DropIntervals converts the millisecond table to durations.
func (l LevelsConfig) DropIntervals() []time.Duration {
	out := make([]time.Duration, len(l.DropIntervalsMS))
	for i, ms := range l.DropIntervalsMS {
		out[i] = time.Duration(ms) * time.Millisecond
	}
	return out
}
