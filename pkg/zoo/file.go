package zoo

import (
	"fmt"
	"path/filepath"
	"strings"

	"golife/pkg/grid"
)

// Load reads a grid from path, picking the codec by file extension:
// .gol ascii, .bgol packed binary, .pgm P5 image.
func Load(path string) (*grid.Grid, error) {
	switch ext(path) {
	case ".gol":
		return LoadASCII(path)
	case ".bgol":
		return LoadBinary(path)
	case ".pgm":
		return LoadPGM(path)
	}
	return nil, fmt.Errorf("%w: %s: unknown extension", ErrInvalidFormat, path)
}

// Save writes a grid to path, picking the codec by file extension the same
// way Load does.
func Save(path string, g *grid.Grid) error {
	switch ext(path) {
	case ".gol":
		return SaveASCII(path, g)
	case ".bgol":
		return SaveBinary(path, g)
	case ".pgm":
		return SavePGM(path, g)
	}
	return fmt.Errorf("%w: %s: unknown extension", ErrInvalidFormat, path)
}

func ext(path string) string { return strings.ToLower(filepath.Ext(path)) }
