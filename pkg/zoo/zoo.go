package zoo

import (
	"errors"
	"slices"

	"golife/pkg/grid"
)

// Errors reported by the codecs. Callers match them with errors.Is; the
// detail behind the kind travels in the wrapped message.
var (
	// ErrFileNotFound reports a path that could not be opened for reading.
	ErrFileNotFound = errors.New("zoo: file not found")
	// ErrIO reports a write that could not be completed.
	ErrIO = errors.New("zoo: i/o failure")
	// ErrInvalidFormat reports malformed file contents.
	ErrInvalidFormat = errors.New("zoo: invalid format")
	// ErrUnexpectedEOF reports a file that ends before its header says it should.
	ErrUnexpectedEOF = errors.New("zoo: unexpected end of file")
)

// Factory builds a creature in a grid sized to its bounding box.
type Factory func() *grid.Grid

var creatures = map[string]Factory{}

// Register adds a creature factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	creatures[name] = f
}

// Spawn builds the named creature, reporting whether it is registered.
func Spawn(name string) (*grid.Grid, bool) {
	f, ok := creatures[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Creatures lists the registered creature names in sorted order.
func Creatures() []string {
	names := make([]string, 0, len(creatures))
	for name := range creatures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Glider returns the five-cell glider in its 3x3 bounding box.
func Glider() *grid.Grid {
	return fromPoints(3, 3, [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

// RPentomino returns the r-pentomino, the smallest methuselah.
func RPentomino() *grid.Grid {
	return fromPoints(3, 3, [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}})
}

// LightweightSpaceship returns the LWSS in its 5x4 bounding box, heading
// in the -x direction.
func LightweightSpaceship() *grid.Grid {
	return fromPoints(5, 4, [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}

func fromPoints(width, height int, points [][2]int) *grid.Grid {
	g := grid.New(width, height)
	cells := g.Cells()
	for _, p := range points {
		cells[g.Index(p[0], p[1])] = grid.Alive
	}
	return g
}

func init() {
	Register("glider", Glider)
	Register("r-pentomino", RPentomino)
	Register("lwss", LightweightSpaceship)
}
