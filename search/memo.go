package search

import (
	"sync"

	"github.com/kamstrup/intmap"

	"github.com/domino14/dropbot/board"
	"github.com/domino14/dropbot/piece"
	"github.com/domino14/dropbot/zobrist"
)

// Zobrist tables are shared by every solver in the process, one per grid
// size. A table is never written after Initialize.
var (
	hashersMu sync.Mutex
	hashers   = map[[2]int]*zobrist.Zobrist{}
)

func hasherFor(g *board.Grid) *zobrist.Zobrist {
	hashersMu.Lock()
	defer hashersMu.Unlock()
	dims := [2]int{g.Width(), g.Height()}
	if z, ok := hashers[dims]; ok {
		return z
	}
	z := &zobrist.Zobrist{}
	z.Initialize(g.Width(), g.Height())
	hashers[dims] = z
	return z
}

// lookaheadMemo caches second-ply scores. Different first placements often
// leave the same grid behind (symmetric pieces, equivalent rotations).
type lookaheadMemo struct {
	z      *zobrist.Zobrist
	scores *intmap.Map[uint64, float64]
}

func newLookaheadMemo(g *board.Grid) *lookaheadMemo {
	return &lookaheadMemo{
		z:      hasherFor(g),
		scores: intmap.New[uint64, float64](128),
	}
}

func (m *lookaheadMemo) key(g *board.Grid, p piece.Piece, combo int) uint64 {
	return m.z.Hash(g, p, combo)
}

func (m *lookaheadMemo) get(key uint64) (float64, bool) {
	return m.scores.Get(key)
}

func (m *lookaheadMemo) put(key uint64, score float64) {
	m.scores.Put(key, score)
}

func (m *lookaheadMemo) Len() int {
	return m.scores.Len()
}
