package grid

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value, so freshly allocated storage starts all dead.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)
