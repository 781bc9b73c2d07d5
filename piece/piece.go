package piece

import "fmt"

// SpawnRow is the anchor row of a freshly spawned piece, one row above the
// visible grid.
const SpawnRow = -1

// spawnColumn is fixed per kind. O spawns one column further right so its
// footprint stays centered.
var spawnColumn = [NumKinds]int{I: 3, J: 3, L: 3, O: 4, S: 3, T: 3, Z: 3}

// A Piece is a tetromino with a rotation and an anchor, the anchor being the
// top-left corner of the kind's bounding matrix. Piece is a plain value, so
// assignment copies it.
type Piece struct {
	kind     Kind
	rotation int
	x, y     int
}

// New returns a piece of kind k in rotation 0, anchored at (x, y).
func New(k Kind, x, y int) Piece {
	return Piece{kind: k, x: x, y: y}
}

// Spawn returns a piece of kind k at its spawn location.
func Spawn(k Kind) Piece {
	return New(k, spawnColumn[k], SpawnRow)
}

func (p Piece) Kind() Kind      { return p.kind }
func (p Piece) Rotation() int   { return p.rotation }
func (p Piece) X() int          { return p.x }
func (p Piece) Y() int          { return p.y }
func (p Piece) Size() int       { return p.kind.Size() }
func (p Piece) Location() Point { return Point{p.x, p.y} }

// Copy returns an independent piece in the same state.
func (p Piece) Copy() Piece {
	return p
}

// RotateClockwise advances the rotation index by one quarter turn. The anchor
// does not move.
func (p *Piece) RotateClockwise() {
	p.rotation = (p.rotation + 1) % 4
}

// Translate moves the anchor by (dx, dy).
func (p *Piece) Translate(dx, dy int) {
	p.x += dx
	p.y += dy
}

// Cells returns the grid coordinates covered by the piece.
func (p Piece) Cells() [4]Point {
	var out [4]Point
	for i, c := range rotationTable[p.kind][p.rotation] {
		out[i] = Point{X: p.x + c.X, Y: p.y + c.Y}
	}
	return out
}

func (p Piece) String() string {
	return fmt.Sprintf("<%v rot: %d at: (%d, %d)>", p.kind, p.rotation, p.x, p.y)
}
