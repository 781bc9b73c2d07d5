package board

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/dropbot/piece"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestIsOccupiedOutOfBounds(t *testing.T) {
	is := is.New(t)
	g := NewGrid(10, 20)
	is.Equal(g.IsOccupied(-1, 0), OutOfBounds)
	is.Equal(g.IsOccupied(0, -1), OutOfBounds)
	is.Equal(g.IsOccupied(10, 0), OutOfBounds)
	is.Equal(g.IsOccupied(0, 20), OutOfBounds)
	is.Equal(g.IsOccupied(9, 19), Empty)
	is.Equal(g.Cell(3, 4), Cell{X: 3, Y: 4, State: Empty})
}

func TestPlaceIgnoresCellsAboveGrid(t *testing.T) {
	is := is.New(t)
	g := NewGrid(4, 4)
	// T at the spawn row: the nub sits at y=-1, the bar at y=0.
	g.Place(piece.New(piece.T, 0, -1))
	is.Equal(g.Rows(), []string{
		"###.",
		"....",
		"....",
		"....",
	})
}

func TestValidity(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"....",
		"....",
		"..#.",
		"XXX.",
	)
	// O above the grid is valid but not at rest.
	above := piece.New(piece.O, 0, -1)
	is.True(g.IsValid(above))
	is.True(!g.IsValidAtRestTop(above))

	inside := piece.New(piece.O, 0, 1)
	is.True(g.IsValid(inside))
	is.True(g.IsValidAtRestTop(inside))

	is.True(!g.IsValid(piece.New(piece.O, 0, 2)))  // hits solid
	is.True(!g.IsValid(piece.New(piece.O, 1, 1)))  // hits block
	is.True(!g.IsValid(piece.New(piece.O, 3, 0)))  // past the right wall
	is.True(!g.IsValid(piece.New(piece.O, -1, 0))) // past the left wall
	is.True(!g.IsValid(piece.New(piece.O, 3, 3)))  // below the floor
}

func TestShapeCellsAreTransparent(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"oo..",
		"oo..",
		"....",
	)
	is.True(g.IsValid(piece.New(piece.O, 0, 0)))
}

func TestShiftAndDescend(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"....",
		"....",
		"#...",
		"#...",
	)
	p := piece.New(piece.O, 1, 0)
	is.True(g.CanShiftLeft(p))
	is.True(!g.CanShiftLeft(piece.New(piece.O, 0, 0))) // left wall
	p = piece.New(piece.O, 1, 1)
	is.True(!g.CanShiftLeft(p)) // (0,2) is a block
	is.True(g.CanShiftRight(p))
	is.True(g.CanDescend(p))

	rested := g.Drop(p)
	is.Equal(rested.Y(), 2)
	is.True(!g.CanDescend(rested))
	is.True(!g.CanShiftRight(piece.New(piece.O, 2, 0)))
}

func TestCountCompletedLines(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"####",
		"##.#",
		"###X",
		"XXXX",
		"####",
	)
	is.Equal(g.CountCompletedLines(), 2) // solid and empty cells never count
	before := g.Copy()
	g.CountCompletedLines()
	is.True(g.Equals(before))
}

func TestClearCompletedLines(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"#...",
		"####",
		".#..",
		"####",
		"#.#.",
	)
	is.Equal(g.ClearCompletedLines(), 2)
	is.Equal(g.Rows(), []string{
		"....",
		"....",
		"#...",
		".#..",
		"#.#.",
	})

	// A second call finds nothing and leaves the grid alone.
	after := g.Copy()
	is.Equal(g.ClearCompletedLines(), 0)
	is.True(g.Equals(after))
}

func TestClearAdjacentLines(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		".#.#",
		"####",
		"####",
		"XXXX",
	)
	is.Equal(g.ClearCompletedLines(), 2)
	is.Equal(g.Rows(), []string{
		"....",
		"....",
		".#.#",
		"XXXX",
	})
}

func TestCountHoles(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"....",
		"#...",
		"..#.",
		"#.XX",
		"....",
	)
	// column 0: y=2 and y=4; column 2: y=4. The solid cell does not cover.
	is.Equal(g.CountHoles(), 3)
}

func TestHolesMonotonicWhileStacking(t *testing.T) {
	is := is.New(t)
	g := NewGrid(6, 12)
	last := g.CountHoles()
	for i, k := range []piece.Kind{piece.S, piece.Z, piece.T, piece.I, piece.L, piece.J, piece.O, piece.S} {
		p := piece.New(k, i%4, 0)
		for r := 0; r < i%4; r++ {
			p.RotateClockwise()
		}
		if !g.IsValid(p) {
			continue
		}
		g.Place(g.Drop(p))
		holes := g.CountHoles()
		is.True(holes >= last)
		last = holes
	}
}

func TestEvaluateLineBonus(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"....",
		"....",
		"....",
		"##..",
	)
	rested := g.Drop(piece.New(piece.O, 2, 0))
	is.Equal(rested.Y(), 2)
	g.Place(rested)
	// (4-2-2)*-5 + 1*4*3 + 0
	is.Equal(g.Evaluate(rested, 4), 12.0)
	// Without a combo the line is worth nothing.
	is.Equal(g.Evaluate(rested, 0), 0.0)
}

func TestEvaluateHeightAndHoles(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"....",
		"#...",
		"..#.",
		"#...",
	)
	// (4-0-2)*-5 + 0 + 2*-10
	is.Equal(g.Evaluate(piece.New(piece.O, 0, 0), 2), -30.0)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g := NewGrid(4, 4)
	cp := g.Copy()
	cp.Set(1, 1, Block)
	is.Equal(g.IsOccupied(1, 1), Empty)
	is.Equal(cp.IsOccupied(1, 1), Block)
	is.True(!g.Equals(cp))
	g.CopyFrom(cp)
	is.True(g.Equals(cp))
}

func TestFieldRoundTrip(t *testing.T) {
	is := is.New(t)
	field := "0,0,1,1;0,0,1,1;2,0,2,2;3,3,3,3"
	g, err := ParseField(4, 4, field)
	is.NoErr(err)
	is.Equal(g.Rows(), []string{
		"..oo",
		"..oo",
		"#.##",
		"XXXX",
	})
	is.Equal(g.FieldString(), field)

	// Trailing separators as some servers send them.
	g2, err := ParseField(4, 4, "0,0,1,1,;0,0,1,1,;2,0,2,2,;3,3,3,3,;")
	is.NoErr(err)
	is.True(g.Equals(g2))
}

func TestParseFieldErrors(t *testing.T) {
	is := is.New(t)
	for _, field := range []string{
		"0,0;0,0",
		"0,0,0;0,0",
		"0,0,0;0,9,0;0,0,0",
		"0,0,0;0,a,0;0,0,0",
	} {
		_, err := ParseField(3, 3, field)
		is.True(errors.Is(err, ErrMalformedField))
	}
	_, err := FromRows([]string{"...", ".."})
	is.True(errors.Is(err, ErrMalformedField))
	_, err = FromRows([]string{"..?"})
	is.True(errors.Is(err, ErrMalformedField))
}

func TestHeights(t *testing.T) {
	is := is.New(t)
	g := mustRows(t,
		"....",
		".#..",
		"....",
		"X..#",
	)
	is.Equal(g.Heights(), []int{1, 3, 0, 1})
}
