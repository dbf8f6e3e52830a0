package zoo

import (
	"encoding/binary"
	"fmt"
	"os"

	"golife/pkg/grid"
)

const binaryHeaderSize = 8

// LoadBinary reads a .bgol file: two native-endian uint32 dimensions, then
// the cells packed eight per byte, LSB first, in row-major order. Trailing
// surplus bytes are tolerated; a file holding fewer than width*height cell
// bits is rejected.
func LoadBinary(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	if len(data) < binaryHeaderSize {
		return nil, fmt.Errorf("%w: %s: %d header bytes, want %d", ErrUnexpectedEOF, path, len(data), binaryHeaderSize)
	}
	width := binary.NativeEndian.Uint32(data[0:4])
	height := binary.NativeEndian.Uint32(data[4:8])

	bits := uint64(width) * uint64(height)
	if have := uint64(len(data)-binaryHeaderSize) * 8; have < bits {
		return nil, fmt.Errorf("%w: %s: %d cell bits, want %d", ErrUnexpectedEOF, path, have, bits)
	}

	g := grid.New(int(width), int(height))
	cells := g.Cells()
	body := data[binaryHeaderSize:]
	for i := range cells {
		if body[i/8]>>(i%8)&1 == 1 {
			cells[i] = grid.Alive
		}
	}
	return g, nil
}

// SaveBinary writes the grid to path in the .bgol format. The packed body
// is sized exactly to the grid, the last byte zero-padded when width*height
// is not a multiple of eight.
func SaveBinary(path string, g *grid.Grid) error {
	cells := g.Cells()
	buf := make([]byte, binaryHeaderSize+(len(cells)+7)/8)
	binary.NativeEndian.PutUint32(buf[0:4], uint32(g.Width()))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(g.Height()))
	body := buf[binaryHeaderSize:]
	for i, c := range cells {
		if c == grid.Alive {
			body[i/8] |= 1 << (i % 8)
		}
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return nil
}
