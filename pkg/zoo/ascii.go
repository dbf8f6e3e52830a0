package zoo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golife/pkg/grid"
)

// LoadASCII reads a .gol file: a "<width> <height>" header line followed by
// height rows of exactly width characters, ' ' for dead and '#' for alive.
// Every row must match the header width, the first one included.
func LoadASCII(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(nil, 1<<24) // rows are lines, so wide grids need long tokens
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
		}
		return nil, fmt.Errorf("%w: %s: missing header", ErrInvalidFormat, path)
	}
	width, height, err := parseDimensions(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	// The body holds at least width bytes per row, so a header promising
	// more than the file size is rejected before anything is allocated.
	if fi, err := f.Stat(); err == nil && height > 0 && fi.Size()/int64(height) < int64(width) {
		return nil, fmt.Errorf("%w: %s: file too small for %dx%d", ErrInvalidFormat, path, width, height)
	}

	g := grid.New(width, height)
	cells := g.Cells()
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
			}
			return nil, fmt.Errorf("%w: %s: %d rows, want %d", ErrInvalidFormat, path, y, height)
		}
		line := sc.Text()
		if len(line) != width {
			return nil, fmt.Errorf("%w: %s: row %d is %d characters, want %d", ErrInvalidFormat, path, y, len(line), width)
		}
		for x := 0; x < width; x++ {
			switch line[x] {
			case '#':
				cells[y*width+x] = grid.Alive
			case ' ':
			default:
				return nil, fmt.Errorf("%w: %s: illegal character %q in row %d", ErrInvalidFormat, path, line[x], y)
			}
		}
	}
	return g, nil
}

func parseDimensions(header string) (int, int, error) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("header %q, want \"<width> <height>\"", header)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("width %q", fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("height %q", fields[1])
	}
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("negative dimensions %dx%d", width, height)
	}
	return width, height, nil
}

// SaveASCII writes the grid to path in the .gol format: the dimensions
// header, then the rows with no border decoration.
func SaveASCII(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())
	width := g.Width()
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for _, c := range cells[y*width : (y+1)*width] {
			if c == grid.Alive {
				bw.WriteByte('#')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return nil
}
