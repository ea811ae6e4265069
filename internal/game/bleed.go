package game

import "fmt"

// DefaultBleedDistance is the per-axis cap on how far a tap's color spreads.
const DefaultBleedDistance = 2

// cellPos is a queue entry for the breadth-first traversal.
type cellPos struct {
	row, col int
}

// ApplyBleed colors the origin cell and a bounded neighborhood around it via
// breadth-first propagation over 4-directional neighbors (no diagonals).
//
// A neighbor joins the fill iff it is in bounds, not yet visited, and its
// per-axis distance from the origin does not exceed distance on both axes
// independently (|row-startRow| <= distance AND |col-startCol| <= distance).
// The per-axis window combined with 4-directional connectivity keeps each
// tap's effect local, so players must plan non-overlapping taps.
//
// Every visited cell is set to colorValue regardless of its prior color:
// the fill overwrites already-colored cells reached inside the window, not
// only gray ones. Cells outside the window are untouched. The operation has
// no failure mode given valid inputs; invalid inputs panic.
func ApplyBleed(g *Grid, startRow, startCol, colorValue, distance int) {
	if colorValue <= 0 {
		panic(fmt.Sprintf("game: invalid bleed color value %d", colorValue))
	}
	if distance < 0 {
		panic(fmt.Sprintf("game: invalid bleed distance %d", distance))
	}
	g.checkBounds(startRow, startCol)

	size := g.Size()
	visited := make([][]bool, size)
	for r := range visited {
		visited[r] = make([]bool, size)
	}

	queue := make([]cellPos, 0, (2*distance+1)*(2*distance+1))
	queue = append(queue, cellPos{startRow, startCol})
	visited[startRow][startCol] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		g.Set(cur.row, cur.col, colorValue)

		for _, d := range [4]cellPos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := cur.row+d.row, cur.col+d.col
			if !g.InBounds(nr, nc) || visited[nr][nc] {
				continue
			}
			if abs(nr-startRow) > distance || abs(nc-startCol) > distance {
				continue
			}
			visited[nr][nc] = true
			queue = append(queue, cellPos{nr, nc})
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
