package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedField = errors.New("malformed field")

// ParseField reads the row-major match encoding: rows separated by ';',
// cells by ',', with codes 0 empty, 1 shape, 2 block and 3 solid. Trailing
// separators are tolerated.
func ParseField(width, height int, field string) (*Grid, error) {
	g := NewGrid(width, height)
	rows := strings.Split(strings.TrimSuffix(field, ";"), ";")
	if len(rows) < height {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedField, height, len(rows))
	}
	for y := 0; y < height; y++ {
		codes := strings.Split(strings.TrimSuffix(rows[y], ","), ",")
		if len(codes) < width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrMalformedField, y, len(codes), width)
		}
		for x := 0; x < width; x++ {
			code, err := strconv.Atoi(strings.TrimSpace(codes[x]))
			if err != nil || code < int(Empty) || code > int(Solid) {
				return nil, fmt.Errorf("%w: bad cell code %q at (%d, %d)",
					ErrMalformedField, codes[x], x, y)
			}
			g.cells[y*width+x] = CellState(code)
		}
	}
	return g, nil
}

// FieldString writes the grid in the encoding ParseField reads.
func (g *Grid) FieldString() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte(';')
		}
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(g.cells[y*g.width+x])))
		}
	}
	return sb.String()
}

var displayRunes = map[CellState]byte{
	Empty: '.',
	Shape: 'o',
	Block: '#',
	Solid: 'X',
}

// FromRows builds a grid from a picture, one string per row, top first:
// '.' empty, 'o' shape, '#' block, 'X' solid. All rows must be the same
// length.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedField)
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d",
				ErrMalformedField, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '.':
			case 'o':
				g.cells[y*width+x] = Shape
			case '#':
				g.cells[y*width+x] = Block
			case 'X':
				g.cells[y*width+x] = Solid
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)",
					ErrMalformedField, row[x], x, y)
			}
		}
	}
	return g, nil
}

// Rows is the inverse of FromRows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	buf := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf[x] = displayRunes[g.cells[y*g.width+x]]
		}
		rows[y] = string(buf)
	}
	return rows
}

func (g *Grid) ToDisplayText() string {
	var str string
	header := "   "
	for i := 0; i < g.width; i++ {
		header += fmt.Sprintf("%d", i%10)
	}
	str += header + "\n"
	str += "   " + strings.Repeat("-", g.width) + "\n"
	for y, row := range g.Rows() {
		str += fmt.Sprintf("%2d|%s|\n", y, row)
	}
	str += "   " + strings.Repeat("-", g.width) + "\n"
	return "\n" + str
}
