// Package piece contains the tetromino kinds, their rotation tables, and the
// Piece value used by the placement generator.
package piece

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Kind is one of the seven canonical tetrominoes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z

	NumKinds = 7
)

var ErrUnknownKind = errors.New("unknown piece kind")

// AllKinds is every kind in table order.
var AllKinds = []Kind{I, J, L, O, S, T, Z}

var kindNames = [NumKinds]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// ParseKind accepts a single letter, case-insensitive.
func ParseKind(s string) (Kind, error) {
	_, idx, ok := lo.FindIndexOf(kindNames[:], func(n string) bool {
		return strings.EqualFold(n, strings.TrimSpace(s))
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return Kind(idx), nil
}

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// The base matrices, as (x, y) cells inside each kind's size x size bounding
// box. Rotation 0 is the spawn orientation.
var baseCells = [NumKinds][]Point{
	I: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	J: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	L: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	S: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	T: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	Z: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
}

var sizes = [NumKinds]int{I: 4, J: 3, L: 3, O: 2, S: 3, T: 3, Z: 3}

// Size is the edge length of the kind's bounding matrix.
func (k Kind) Size() int {
	return sizes[k]
}

// rotationTable[kind][rotation] holds the cell offsets for that rotation.
var rotationTable [NumKinds][4][]Point

func init() {
	for _, k := range AllKinds {
		cells := baseCells[k]
		for r := 0; r < 4; r++ {
			rotationTable[k][r] = cells
			cells = rotateClockwise(cells, sizes[k])
		}
	}
}

// rotateClockwise turns a cell set a quarter turn clockwise inside its
// size x size box. With y pointing down, (x, y) moves to (size-1-y, x).
func rotateClockwise(cells []Point, size int) []Point {
	return lo.Map(cells, func(c Point, _ int) Point {
		return Point{X: size - 1 - c.Y, Y: c.X}
	})
}
