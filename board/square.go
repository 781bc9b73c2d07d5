package board

import "fmt"

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	// Shape marks the live piece. It never collides and never counts as
	// settled material.
	Shape
	// Block is settled piece material.
	Block
	// Solid cells are indestructible and never complete a line.
	Solid

	// OutOfBounds is returned for coordinates outside the grid.
	OutOfBounds CellState = 0xFF
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Shape:
		return "shape"
	case Block:
		return "block"
	case Solid:
		return "solid"
	case OutOfBounds:
		return "out-of-bounds"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Blocking reports whether a piece may not overlap this cell.
func (s CellState) Blocking() bool {
	return s == Block || s == Solid
}

// A Cell is a positional view of one grid location.
type Cell struct {
	X, Y  int
	State CellState
}

func (c Cell) String() string {
	return fmt.Sprintf("<(%d, %d) %v>", c.X, c.Y, c.State)
}
