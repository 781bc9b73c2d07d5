// Package board holds the playing grid: cell storage, the collision and
// resting predicates used while enumerating placements, line clearing, hole
// counting and the heuristic evaluation of a grid after a placement.
package board

import (
	"github.com/domino14/dropbot/piece"
)

const (
	heightWeight = -5
	linesWeight  = 3
	holesWeight  = -10
)

// A Grid is a width x height array of cells stored row-major. Row 0 is the
// top of the playing field.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid returns an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Cells exposes the row-major backing slice. Callers must not modify it.
func (g *Grid) Cells() []CellState {
	return g.cells
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOccupied returns the state at (x, y), or OutOfBounds.
func (g *Grid) IsOccupied(x, y int) CellState {
	if !g.inBounds(x, y) {
		return OutOfBounds
	}
	return g.cells[y*g.width+x]
}

// Cell returns the positional cell at (x, y).
func (g *Grid) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, State: g.IsOccupied(x, y)}
}

// Set writes a state. Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, s CellState) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = s
}

// Copy returns an independent deep copy.
func (g *Grid) Copy() *Grid {
	cp := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]CellState, len(g.cells)),
	}
	copy(cp.cells, g.cells)
	return cp
}

// CopyFrom overwrites g with the contents of other. Both grids must have the
// same dimensions.
func (g *Grid) CopyFrom(other *Grid) {
	copy(g.cells, other.cells)
}

func (g *Grid) Equals(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Place settles every cell of p as Block. Cells outside the grid are
// skipped.
func (g *Grid) Place(p piece.Piece) {
	for _, c := range p.Cells() {
		g.Set(c.X, c.Y, Block)
	}
}

// outOfBoundaries is true past the side walls or below the floor. Rows above
// the top are not out of bounds.
func (g *Grid) outOfBoundaries(c piece.Point) bool {
	return c.X < 0 || c.X >= g.width || c.Y >= g.height
}

func (g *Grid) collides(c piece.Point) bool {
	return g.IsOccupied(c.X, c.Y).Blocking()
}

// IsValid reports whether p overlaps no Block or Solid cell and stays inside
// the side walls and above the floor. Cells above the top row are allowed.
func (g *Grid) IsValid(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if g.outOfBoundaries(c) || g.collides(c) {
			return false
		}
	}
	return true
}

// IsValidAtRestTop is IsValid with the extra requirement that every cell is
// inside the visible grid.
func (g *Grid) IsValidAtRestTop(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if g.outOfBoundaries(c) || g.collides(c) || c.Y < 0 {
			return false
		}
	}
	return true
}

func (g *Grid) canMove(p piece.Piece, dx, dy int) bool {
	p.Translate(dx, dy)
	return g.IsValid(p)
}

func (g *Grid) CanShiftLeft(p piece.Piece) bool  { return g.canMove(p, -1, 0) }
func (g *Grid) CanShiftRight(p piece.Piece) bool { return g.canMove(p, 1, 0) }
func (g *Grid) CanDescend(p piece.Piece) bool    { return g.canMove(p, 0, 1) }

// Drop returns p moved straight down until it can descend no further.
func (g *Grid) Drop(p piece.Piece) piece.Piece {
	for g.CanDescend(p) {
		p.Translate(0, 1)
	}
	return p
}

// Evaluate scores the grid after rested has been placed into it, before
// any line is cleared. Resting lower costs less, completed lines earn
// comboFactor*3 each and every hole costs 10.
func (g *Grid) Evaluate(rested piece.Piece, comboFactor int) float64 {
	heightPenalty := (g.height - rested.Y() - rested.Size()) * heightWeight
	lineBonus := g.CountCompletedLines() * comboFactor * linesWeight
	holePenalty := g.CountHoles() * holesWeight
	return float64(heightPenalty + lineBonus + holePenalty)
}
