package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// MinColors is the length of a complete color table: the empty cell plus
// one entry per tetromino kind.
const MinColors = 8

// DefaultTetrisConfig returns the built-in rules. It matches the embedded
// YAML and is used when that cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Cols: 10,
			Rows: 20,
		},
		Levels: LevelsConfig{
			LinesPerLevel: 10,
			DropIntervalsMS: []int{
				800, 720, 630, 550, 470, 380, 300, 220, 130, 100,
				80, 80, 80, 70, 70, 70, 50, 50, 50, 30, 30,
			},
		},
		Points: PointsConfig{
			SoftDrop: 1,
			HardDrop: 2,
			Single:   100,
			Double:   300,
			Triple:   500,
			Tetris:   800,
		},
		Colors: []string{"none", "cyan", "blue", "orange", "yellow", "green", "purple", "red"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
