package zoo

import (
	"fmt"
	"os"
	"strconv"

	"golife/pkg/grid"
)

// LoadPGM reads a binary (P5) PGM image as a grid: any sample above zero is
// an alive cell. Only single-byte samples are supported, so the maxval must
// lie in 1..255.
func LoadPGM(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}

	magic, rest := pgmToken(data)
	if magic != "P5" {
		return nil, fmt.Errorf("%w: %s: magic %q, want P5", ErrInvalidFormat, path, magic)
	}
	widthTok, rest := pgmToken(rest)
	heightTok, rest := pgmToken(rest)
	maxvalTok, rest := pgmToken(rest)
	width, werr := strconv.Atoi(widthTok)
	height, herr := strconv.Atoi(heightTok)
	maxval, merr := strconv.Atoi(maxvalTok)
	if werr != nil || herr != nil || merr != nil || width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %s: header %q %q %q", ErrInvalidFormat, path, widthTok, heightTok, maxvalTok)
	}
	if maxval < 1 || maxval > 255 {
		return nil, fmt.Errorf("%w: %s: maxval %d, want 1..255", ErrInvalidFormat, path, maxval)
	}
	// len/height < width is the overflow-proof form of len < width*height.
	if width > 0 && height > 0 && len(rest)/height < width {
		return nil, fmt.Errorf("%w: %s: %d raster bytes for %dx%d", ErrUnexpectedEOF, path, len(rest), width, height)
	}

	g := grid.New(width, height)
	cells := g.Cells()
	for i := range cells {
		if rest[i] != 0 {
			cells[i] = grid.Alive
		}
	}
	return g, nil
}

// pgmToken splits the next whitespace-delimited header token off data. The
// remainder starts one byte past the delimiter ending the token, so the
// raster byte after the maxval token is never skipped even when it happens
// to be whitespace.
func pgmToken(data []byte) (string, []byte) {
	start := 0
	for start < len(data) && isPGMSpace(data[start]) {
		start++
	}
	end := start
	for end < len(data) && !isPGMSpace(data[end]) {
		end++
	}
	next := end
	if next < len(data) {
		next++
	}
	return string(data[start:end]), data[next:]
}

func isPGMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SavePGM writes the grid to path as a P5 PGM image, alive cells as
// full-intensity 255 samples and dead cells as 0.
func SavePGM(path string, g *grid.Grid) error {
	cells := g.Cells()
	header := fmt.Sprintf("P5\n%d %d\n255\n", g.Width(), g.Height())
	buf := make([]byte, 0, len(header)+len(cells))
	buf = append(buf, header...)
	for _, c := range cells {
		if c == grid.Alive {
			buf = append(buf, 0xFF)
		} else {
			buf = append(buf, 0x00)
		}
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return nil
}
