package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/piece"
)

func TestHashTracksCells(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(10, 20)

	g := board.NewGrid(10, 20)
	is.Equal(z.HashGrid(g), uint64(0))

	h := z.HashGrid(g)
	cp := g.Copy()
	cp.Place(piece.New(piece.O, 0, 18))
	h1 := z.HashGrid(cp)
	is.True(h1 != h) // extremely unlikely to collide

	// The same cells reached another way hash the same.
	other := g.Copy()
	for _, c := range []piece.Point{{X: 0, Y: 18}, {X: 1, Y: 18}, {X: 0, Y: 19}, {X: 1, Y: 19}} {
		other.Set(c.X, c.Y, board.Block)
	}
	is.Equal(z.HashGrid(other), h1)

	// Cell state matters, not just occupancy.
	solid := g.Copy()
	solid.Set(0, 19, board.Solid)
	blocked := g.Copy()
	blocked.Set(0, 19, board.Block)
	is.True(z.HashGrid(solid) != z.HashGrid(blocked))
}

func TestHashIncludesPieceAndCombo(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(10, 20)
	g := board.NewGrid(10, 20)

	base := z.Hash(g, piece.Spawn(piece.T), 0)
	is.Equal(base, z.Hash(g, piece.Spawn(piece.T), 0))
	is.True(base != z.Hash(g, piece.Spawn(piece.T), 1))
	is.True(base != z.Hash(g, piece.Spawn(piece.L), 0))

	moved := piece.Spawn(piece.T)
	moved.Translate(1, 0)
	is.True(base != z.Hash(g, moved, 0))

	turned := piece.Spawn(piece.T)
	turned.RotateClockwise()
	is.True(base != z.Hash(g, turned, 0))
}
