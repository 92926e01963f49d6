package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c TetrisConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	// The I piece spans four cells, so narrower boards cannot spawn it.
	if c.Board.Cols < 4 {
		add("board.cols must be at least 4, got %d", c.Board.Cols)
	}
	if c.Board.Rows < 4 {
		add("board.rows must be at least 4, got %d", c.Board.Rows)
	}

	if c.Levels.LinesPerLevel <= 0 {
		add("levels.lines_per_level must be positive, got %d", c.Levels.LinesPerLevel)
	}
	if len(c.Levels.DropIntervalsMS) == 0 {
		add("levels.drop_intervals_ms must not be empty")
	}
	for i, ms := range c.Levels.DropIntervalsMS {
		if ms <= 0 {
			add("levels.drop_intervals_ms[%d] must be positive, got %d", i, ms)
		}
	}

	p := c.Points
	for _, f := range []struct {
		name string
		v    int
	}{
		{"soft_drop", p.SoftDrop}, {"hard_drop", p.HardDrop},
		{"single", p.Single}, {"double", p.Double}, {"triple", p.Triple}, {"tetris", p.Tetris},
	} {
		if f.v < 0 {
			add("points.%s must not be negative, got %d", f.name, f.v)
		}
	}

	if len(c.Colors) < MinColors {
		add("colors needs %d entries, got %d", MinColors, len(c.Colors))
	}
	for i, name := range c.Colors {
		if _, ok := core.ColorByName(name); !ok {
			add("colors[%d]: unknown color %q", i, name)
		}
	}

	return errors.Join(errs...)
}

// ColorTable resolves the color names. Unknown names fall back to the
// default color; call Validate first to reject them.
func (c TetrisConfig) ColorTable() []core.Color {
	table := make([]core.Color, len(c.Colors))
	for i, name := range c.Colors {
		table[i], _ = core.ColorByName(name)
	}
	return table
}
