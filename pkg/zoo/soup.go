package zoo

import (
	"math/rand/v2"

	"golife/pkg/grid"
)

// Soup returns a width x height grid where each cell is alive with the
// given probability. The same seed always produces the same soup.
func Soup(width, height int, density float64, seed int64) *grid.Grid {
	g := grid.New(width, height)
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	cells := g.Cells()
	for i := range cells {
		if rng.Float64() < density {
			cells[i] = grid.Alive
		}
	}
	return g
}
