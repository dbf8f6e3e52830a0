package life

import (
	"golife/pkg/grid"
)

// World evolves Conway's Game of Life over a pair of equally sized grids.
// Each generation is written into the spare grid and the two swap
// identities in constant time, so no cell storage is copied per step.
type World struct {
	cur *grid.Grid
	nxt *grid.Grid
}

// New returns a world with the provided dimensions and every cell dead.
func New(width, height int) *World {
	return &World{cur: grid.New(width, height), nxt: grid.New(width, height)}
}

// NewSquare returns a size x size world.
func NewSquare(size int) *World { return New(size, size) }

// NewFromGrid adopts initial as the starting state. The grid belongs to
// the world afterwards and must not be written by the caller.
func NewFromGrid(initial *grid.Grid) *World {
	return &World{cur: initial, nxt: grid.New(initial.Width(), initial.Height())}
}

// Width returns the number of columns.
func (w *World) Width() int { return w.cur.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.cur.Height() }

// TotalCells returns width*height.
func (w *World) TotalCells() int { return w.cur.TotalCells() }

// AliveCells counts the alive cells of the current generation.
func (w *World) AliveCells() int { return w.cur.AliveCells() }

// DeadCells counts the dead cells of the current generation.
func (w *World) DeadCells() int { return w.cur.DeadCells() }

// State exposes the current generation without copying. The grid stays
// owned by the world; treat it as read-only between steps.
func (w *World) State() *grid.Grid { return w.cur }

// Resize resizes the current generation, keeping the overlap anchored at
// (0,0). The spare grid is left alone and replaced on the next Step.
func (w *World) Resize(width, height int) { w.cur.Resize(width, height) }

// ResizeSquare resizes the world to size x size.
func (w *World) ResizeSquare(size int) { w.cur.Resize(size, size) }

// countNeighbors returns how many of the eight cells around (x, y) hold an
// alive cell. With toroidal set, coordinates wrap modulo the dimensions, so
// on a single-row or single-column world a cell is its own neighbor; without
// it, positions past the edge count as dead.
func (w *World) countNeighbors(x, y int, toroidal bool) int {
	width, height := w.cur.Width(), w.cur.Height()
	cells := w.cur.Cells()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx%width + width) % width
				ny = (ny%height + height) % height
			} else if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if cells[ny*width+nx] == grid.Alive {
				neighbors++
			}
		}
	}
	return neighbors
}

// Step advances the world by one generation: an alive cell survives with
// two or three alive neighbors, a dead cell comes alive with exactly three,
// every other cell is dead in the next generation.
func (w *World) Step(toroidal bool) {
	width, height := w.cur.Width(), w.cur.Height()
	if w.nxt.Width() != width || w.nxt.Height() != height {
		// A resize only touched the current grid; the stale spare is
		// replaced without reading its old contents.
		w.nxt = grid.New(width, height)
	}
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			neighbors := w.countNeighbors(x, y, toroidal)
			idx := y*width + x
			alive := cur[idx] == grid.Alive
			nxt[idx] = grid.Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = grid.Alive
			}
		}
	}
	w.cur, w.nxt = w.nxt, w.cur
}

// Advance runs count generations in a row.
func (w *World) Advance(count int, toroidal bool) {
	for i := 0; i < count; i++ {
		w.Step(toroidal)
	}
}
