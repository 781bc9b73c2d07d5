package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/piece"
)

const bignum = 1<<63 - 2

// numStates covers Shape, Block and Solid. Empty cells contribute nothing.
const numStates = 3

// generate a zobrist hash for a grid position plus the piece about to be
// placed on it.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable  [][numStates]uint64
	kindTable [piece.NumKinds][4]uint64
}

func (z *Zobrist) Initialize(width, height int) {
	z.posTable = make([][numStates]uint64, width*height)
	for i := range z.posTable {
		for j := 0; j < numStates; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for k := 0; k < piece.NumKinds; k++ {
		for r := 0; r < 4; r++ {
			z.kindTable[k][r] = frand.Uint64n(bignum) + 1
		}
	}
}

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

// HashGrid hashes the cell contents only.
func (z *Zobrist) HashGrid(g *board.Grid) uint64 {
	key := uint64(0)
	for i, s := range g.Cells() {
		if s == board.Empty {
			continue
		}
		key ^= z.posTable[i][s-1]
	}
	return key
}

// Hash keys a search node: the grid, the piece to place (kind, rotation and
// anchor), and the combo counter.
func (z *Zobrist) Hash(g *board.Grid, p piece.Piece, combo int) uint64 {
	key := z.HashGrid(g)
	key ^= z.kindTable[p.Kind()][p.Rotation()]
	loc := uint64(uint32(int32(p.X())))<<32 | uint64(uint32(int32(p.Y())))
	key ^= hashUint64(loc ^ 0x9e3779b97f4a7c15)
	key ^= hashUint64(uint64(combo) + 1)
	return key
}
