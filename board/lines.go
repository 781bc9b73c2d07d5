package board

// isLine is true when every cell in the row is Block.
func (g *Grid) isLine(row int) bool {
	for _, s := range g.cells[row*g.width : (row+1)*g.width] {
		if s != Block {
			return false
		}
	}
	return true
}

// CountCompletedLines counts rows made entirely of Block cells.
func (g *Grid) CountCompletedLines() int {
	count := 0
	for r := 0; r < g.height; r++ {
		if g.isLine(r) {
			count++
		}
	}
	return count
}

// ClearCompletedLines removes every completed row, top to bottom. Each
// removal shifts the rows above it down by one and opens an empty row at the
// top. It returns the number of rows removed.
func (g *Grid) ClearCompletedLines() int {
	count := 0
	for r := 0; r < g.height; r++ {
		if !g.isLine(r) {
			continue
		}
		count++
		copy(g.cells[g.width:(r+1)*g.width], g.cells[:r*g.width])
		clear(g.cells[:g.width])
	}
	return count
}

// CountHoles counts, per column, the Empty cells below the first Block seen
// from the top.
func (g *Grid) CountHoles() int {
	count := 0
	for x := 0; x < g.width; x++ {
		covered := false
		for y := 0; y < g.height; y++ {
			switch g.cells[y*g.width+x] {
			case Block:
				covered = true
			case Empty:
				if covered {
					count++
				}
			}
		}
	}
	return count
}

// Heights returns, per column, the number of rows from the floor up to and
// including the highest Block or Solid cell.
func (g *Grid) Heights() []int {
	heights := make([]int, g.width)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[y*g.width+x].Blocking() {
				heights[x] = g.height - y
				break
			}
		}
	}
	return heights
}
