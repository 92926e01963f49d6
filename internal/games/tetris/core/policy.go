package core

// IsValidPosition reports whether every filled cell of p lies inside the side
// walls, no lower than one row past the floor, and on an empty board cell.
//
// The floor test is y <= Rows, one row more permissive than the grid. A cell
// on the missing row still fails because the board lookup finds no cell there.
func IsValidPosition(p Piece, b Board) bool {
	cols, rows := b.Cols(), b.Rows()
	for dy, row := range p.Shape {
		for dx, v := range row {
			if v == Empty {
				continue
			}
			x, y := p.X+dx, p.Y+dy
			if x < 0 || x >= cols {
				return false
			}
			if y > rows {
				return false
			}
			if cell, ok := b.At(x, y); !ok || cell != Empty {
				return false
			}
		}
	}
	return true
}

// Rotate returns p turned 90 degrees clockwise: the shape is transposed and
// then every row is reversed. The offset is kept and p is left untouched.
func Rotate(p Piece) Piece {
	r := p.Clone()
	s := r.Shape
	for y := range s {
		for x := 0; x < y; x++ {
			s[x][y], s[y][x] = s[y][x], s[x][y]
		}
	}
	for _, row := range s {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return r
}

// Points holds the score awarded for drops and line clears.
type Points struct {
	SoftDrop int
	HardDrop int
	Single   int
	Double   int
	Triple   int
	Tetris   int
}

// DefaultPoints returns the classic point values.
func DefaultPoints() Points {
	return Points{
		SoftDrop: 1,
		HardDrop: 2,
		Single:   100,
		Double:   300,
		Triple:   500,
		Tetris:   800,
	}
}

// LineClear returns the points for clearing the given number of lines at a
// zero-indexed level. Counts outside 1..4 score nothing.
func (p Points) LineClear(lines, level int) int {
	var base int
	switch lines {
	case 1:
		base = p.Single
	case 2:
		base = p.Double
	case 3:
		base = p.Triple
	case 4:
		base = p.Tetris
	}
	return (level + 1) * base
}
