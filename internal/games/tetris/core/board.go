// Package core implements the falling-block game state machine and the pure
// collision and scoring policy it relies on. It has no platform dependencies.
package core

// Empty is the cell value of an unoccupied board cell.
const Empty = 0

// Board is a Rows x Cols grid of color indices. Board[y][x] addresses row y,
// column x; 0 means empty and 1..N is a filled cell of color N.
type Board [][]int

// NewBoard allocates an empty board with the given dimensions.
func NewBoard(cols, rows int) Board {
	b := make(Board, rows)
	for y := range b {
		b[y] = make([]int, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// At returns the value at (x, y) and whether the cell exists.
func (b Board) At(x, y int) (int, bool) {
	if y < 0 || y >= len(b) || x < 0 || x >= len(b[y]) {
		return Empty, false
	}
	return b[y][x], true
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// RowFull reports whether every cell in row y is occupied.
func (b Board) RowFull(y int) bool {
	for _, v := range b[y] {
		if v == Empty {
			return false
		}
	}
	return true
}

// Filled counts occupied cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// removeRow deletes row y and inserts an empty row at the top. Rows above y
// shift down by one; the row count is unchanged.
func (b Board) removeRow(y int) {
	cols := b.Cols()
	copy(b[1:y+1], b[:y])
	b[0] = make([]int, cols)
}

// freeze copies every non-empty shape cell of p into the board. Cells that
// fall outside the grid are skipped.
func (b Board) freeze(p Piece) {
	for dy, row := range p.Shape {
		for dx, v := range row {
			if v == Empty {
				continue
			}
			x, y := p.X+dx, p.Y+dy
			if _, ok := b.At(x, y); ok {
				b[y][x] = v
			}
		}
	}
}
