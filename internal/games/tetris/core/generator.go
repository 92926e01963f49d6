package core

import "math/rand"

// Generator supplies new pieces with a square shape and a spawn offset.
type Generator interface {
	Next() Piece
}

// RandomGenerator picks kinds uniformly and spawns them centered on the top row.
type RandomGenerator struct {
	rng  *rand.Rand
	cols int
}

// NewRandomGenerator creates a generator for a board of the given width.
func NewRandomGenerator(seed int64, cols int) *RandomGenerator {
	return &RandomGenerator{
		rng:  rand.New(rand.NewSource(seed)),
		cols: cols,
	}
}

// Next returns a new randomly selected piece.
func (g *RandomGenerator) Next() Piece {
	k := Kind(g.rng.Intn(KindCount) + 1)
	return Spawn(k, g.cols)
}

// Spawn places a piece of kind k horizontally centered at row 0.
func Spawn(k Kind, cols int) Piece {
	p := NewPiece(k, 0, 0)
	p.X = (cols - p.Shape.Size()) / 2
	return p
}

// SequenceGenerator replays a fixed list of kinds, cycling when exhausted.
type SequenceGenerator struct {
	kinds []Kind
	cols  int
	pos   int
}

// NewSequenceGenerator creates a generator that yields kinds in order.
func NewSequenceGenerator(cols int, kinds ...Kind) *SequenceGenerator {
	return &SequenceGenerator{kinds: kinds, cols: cols}
}

// Next returns the next piece in the sequence.
func (g *SequenceGenerator) Next() Piece {
	k := g.kinds[g.pos%len(g.kinds)]
	g.pos++
	return Spawn(k, g.cols)
}
