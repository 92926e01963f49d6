package core

// Kind identifies a tetromino. Its value doubles as the color index written
// into the board when a piece of that kind freezes.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of playable kinds.
const KindCount = int(KindZ)

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a square matrix of cell values; 0 is empty.
type Shape [][]int

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i, row := range s {
		c[i] = append([]int(nil), row...)
	}
	return c
}

// Size returns the side length of the shape.
func (s Shape) Size() int {
	return len(s)
}

// Square reports whether every row has as many cells as there are rows.
func (s Shape) Square() bool {
	for _, row := range s {
		if len(row) != len(s) {
			return false
		}
	}
	return true
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// shapes holds the spawn orientation of every kind, colored with the kind's
// own index.
var shapes = map[Kind]Shape{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	KindO: {
		{4, 4},
		{4, 4},
	},
	KindS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	KindT: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	KindZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// ShapeOf returns a fresh copy of the spawn shape for k, or nil for an
// unknown kind.
func ShapeOf(k Kind) Shape {
	s, ok := shapes[k]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Piece is a shape positioned on the board by its top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece creates a piece of kind k at (x, y).
func NewPiece(k Kind, x, y int) Piece {
	return Piece{Kind: k, Shape: ShapeOf(k), X: x, Y: y}
}

// Clone returns a copy that shares nothing with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns a candidate offset by (dx, dy). The shape is shared with p;
// callers treat shapes as immutable once built.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Cells calls fn with the absolute position and value of every filled cell.
func (p Piece) Cells(fn func(x, y, v int)) {
	for dy, row := range p.Shape {
		for dx, v := range row {
			if v != Empty {
				fn(p.X+dx, p.Y+dy, v)
			}
		}
	}
}
