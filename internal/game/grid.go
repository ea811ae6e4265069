// Package game implements the color-bleed puzzle engine: the grid state,
// the bounded flood-fill propagation, completion tracking, score
// computation, and the per-play session state machine. It contains pure
// logic with no external dependencies (especially no Bubble Tea) so the
// platform layer can drive it from any frontend.
package game

import "fmt"

// Grid is the N×N cell matrix for one play. A cell value of 0 means
// uncolored (gray); a value k > 0 means the cell carries palette color k-1.
// Palette indices are stored 1-based so that 0 stays reserved for "uncolored".
type Grid struct {
	size  int
	cells [][]int
}

// NewGrid creates an all-uncolored grid of the given size.
// Panics if size is not positive.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %d", size))
	}
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// checkBounds panics on out-of-range coordinates. Out-of-range access is a
// caller contract violation, not a game condition.
func (g *Grid) checkBounds(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("game: cell (%d,%d) out of range for %dx%d grid", row, col, g.size, g.size))
	}
}

// Get returns the value at (row, col). Panics if out of range.
func (g *Grid) Get(row, col int) int {
	g.checkBounds(row, col)
	return g.cells[row][col]
}

// Set writes value at (row, col). Panics if out of range or value is negative.
func (g *Grid) Set(row, col, value int) {
	g.checkBounds(row, col)
	if value < 0 {
		panic(fmt.Sprintf("game: invalid cell value %d", value))
	}
	g.cells[row][col] = value
}

// ColoredCount returns the number of cells with a non-zero value.
func (g *Grid) ColoredCount() int {
	count := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v > 0 {
				count++
			}
		}
	}
	return count
}

// Reset returns every cell to the uncolored state.
func (g *Grid) Reset() {
	for _, row := range g.cells {
		for c := range row {
			row[c] = 0
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.size)
	for r, row := range g.cells {
		copy(clone.cells[r], row)
	}
	return clone
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for r, row := range g.cells {
		for c, v := range row {
			if v != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
