// Package movegen enumerates every resting placement a piece can reach by
// rotating at its current location, sliding sideways and dropping straight
// down.
package movegen

import (
	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/piece"
)

// A Placement is one reachable resting position of a piece.
type Placement struct {
	// Rotation is the number of clockwise turns from the starting piece.
	Rotation int
	// Offset counts columns to the left of the starting column; negative
	// values are to the right.
	Offset int
	// Rested is the piece at the bottom of its drop.
	Rested piece.Piece
}

// GenAll walks every rotation of p, slides it against the left wall, then
// sweeps it right one column at a time. At each column the piece is
// dropped, and placements that come to rest fully inside the grid are
// handed to rec in enumeration order: rotations ascending, and within a
// rotation left to right (offset descending).
//
// Rotations are applied cumulatively to a working copy, so p itself is
// untouched. Returns the number of placements recorded.
func GenAll(g *board.Grid, p piece.Piece, rec PlayRecorderFunc) int {
	n := 0
	working := p.Copy()
	for rotation := 0; rotation < 4; rotation++ {
		if rotation != 0 {
			working.RotateClockwise()
		}
		offset := 0
		sweep := working.Copy()
		for g.CanShiftLeft(sweep) {
			sweep.Translate(-1, 0)
			offset++
		}
		for g.IsValid(sweep) {
			rested := g.Drop(sweep)
			if g.IsValidAtRestTop(rested) {
				rec(Placement{Rotation: rotation, Offset: offset, Rested: rested})
				n++
			}
			offset--
			sweep.Translate(1, 0)
		}
	}
	return n
}

// Plays collects every placement into a slice.
func Plays(g *board.Grid, p piece.Piece) []Placement {
	var plays []Placement
	GenAll(g, p, AllPlaysRecorder(&plays))
	return plays
}
