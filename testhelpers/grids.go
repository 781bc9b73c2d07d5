// Package testhelpers has small builders shared by tests across packages.
package testhelpers

import (
	"lukechampine.com/frand"

	"github.com/domino14/dropbot/board"
)

// GridFromRows builds a grid from a picture and panics on a malformed one.
// See board.FromRows for the alphabet.
func GridFromRows(rows ...string) *board.Grid {
	g, err := board.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// BottomRowWithGap returns a grid of the given size with a row of blocks at the
// bottom that has a single gap at column gap.
func BottomRowWithGap(width, height, gap int) *board.Grid {
	g := board.NewGrid(width, height)
	for x := 0; x < width; x++ {
		if x != gap {
			g.Set(x, height-1, board.Block)
		}
	}
	return g
}

// RandomGrid fills up to the bottom half of each column with blocks, leaving
// about one cell in five empty so the stacks have holes.
func RandomGrid(rng *frand.RNG, width, height int) *board.Grid {
	g := board.NewGrid(width, height)
	for x := 0; x < width; x++ {
		top := height - rng.Intn(height/2)
		for y := top; y < height; y++ {
			if rng.Intn(5) != 0 {
				g.Set(x, y, board.Block)
			}
		}
	}
	return g
}
