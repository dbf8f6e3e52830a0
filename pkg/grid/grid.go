package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Errors reported by grid operations. Callers match them with errors.Is.
var (
	// ErrOutOfBounds reports a coordinate outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidRange reports crop or merge geometry that does not fit the
	// grids involved.
	ErrInvalidRange = errors.New("grid: invalid range")
)

// Grid stores a dense 2D field of cells in row-major order. Every grid
// exclusively owns its storage; operations that produce a new grid never
// alias the source.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New allocates an all-dead grid with the given dimensions. Zero is a legal
// size; negative dimensions clamp to zero.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// NewSquare allocates an all-dead size x size grid.
func NewSquare(size int) *Grid { return New(size, size) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TotalCells returns width*height.
func (g *Grid) TotalCells() int { return g.width * g.height }

// AliveCells counts the alive cells over the whole grid.
func (g *Grid) AliveCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// DeadCells counts the dead cells over the whole grid.
func (g *Grid) DeadCells() int { return g.TotalCells() - g.AliveCells() }

// Cells exposes the backing slice so callers can read/write values directly.
// The slice stays attached to the grid until the next Resize.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.width + x }

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.contains(x, y) {
		return Dead, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, value Cell) error {
	if !g.contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[g.Index(x, y)] = value
	return nil
}

// Resize reallocates storage with the new dimensions, keeping the cells
// inside the overlap rectangle anchored at (0,0). Cells gained are dead,
// cells dropped are gone for good. Negative dimensions clamp to zero.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	keepW := min(width, g.width)
	keepH := min(height, g.height)
	for y := 0; y < keepH; y++ {
		copy(cells[y*width:y*width+keepW], g.cells[y*g.width:y*g.width+keepW])
	}
	g.width, g.height, g.cells = width, height, cells
}

// ResizeSquare resizes the grid to size x size.
func (g *Grid) ResizeSquare(size int) { g.Resize(size, size) }

// Crop returns a new grid holding a copy of the half-open rectangle
// [x0,x1) x [y0,y1).
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x0 > x1 || y0 > y1 || x1 > g.width || y1 > g.height {
		return nil, fmt.Errorf("%w: crop [%d,%d)x[%d,%d) of %dx%d", ErrInvalidRange, x0, x1, y0, y1, g.width, g.height)
	}
	out := New(x1-x0, y1-y0)
	for y := y0; y < y1; y++ {
		copy(out.cells[(y-y0)*out.width:(y-y0+1)*out.width], g.cells[y*g.width+x0:y*g.width+x1])
	}
	return out, nil
}

// Merge overlays other onto g with other's top-left corner at (x0, y0). By
// default every covered cell takes other's value; with aliveOnly only
// other's alive cells are written, so no alive cell of g is killed by the
// merge. The footprint is validated before any cell is touched.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0+other.width > g.width || y0+other.height > g.height {
		return fmt.Errorf("%w: merge %dx%d at (%d,%d) into %dx%d", ErrInvalidRange, other.width, other.height, x0, y0, g.width, g.height)
	}
	for y := 0; y < other.height; y++ {
		src := other.cells[y*other.width : (y+1)*other.width]
		dst := g.cells[(y0+y)*g.width+x0 : (y0+y)*g.width+x0+other.width]
		if !aliveOnly {
			copy(dst, src)
			continue
		}
		for x, c := range src {
			if c == Alive {
				dst[x] = Alive
			}
		}
	}
	return nil
}

// Rotate returns a new grid turned by rotation quarter turns clockwise.
// Any integer is accepted; only rotation mod 4 matters. Odd turns swap the
// dimensions, and zero turns still return an independent copy.
func (g *Grid) Rotate(rotation int) *Grid {
	switch ((rotation % 4) + 4) % 4 {
	case 1:
		out := New(g.height, g.width)
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				out.cells[y*out.width+x] = g.cells[(g.height-1-x)*g.width+y]
			}
		}
		return out
	case 2:
		out := New(g.width, g.height)
		last := len(g.cells) - 1
		for i, c := range g.cells {
			out.cells[last-i] = c
		}
		return out
	case 3:
		out := New(g.height, g.width)
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				out.cells[y*out.width+x] = g.cells[x*g.width+(g.width-1-y)]
			}
		}
		return out
	default:
		return g.Clone()
	}
}

// Clone returns a value-equal copy with its own storage.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.cells, other.cells)
}

// String renders the grid in its bordered text form: +--+ rails above and
// below, rows framed by |, '#' for alive and ' ' for dead, one row per
// line. The render always ends with a newline.
func (g *Grid) String() string {
	border := "+" + strings.Repeat("-", g.width) + "+\n"
	var b strings.Builder
	b.Grow(2*len(border) + g.height*(g.width+3))
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			if c == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
