package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"golife/pkg/grid"
	"golife/pkg/zoo"
)

func TestMain(m *testing.M) {
	log.SetHandler(discard.New())
	os.Exit(m.Run())
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		path, format, outDir, want string
	}{
		{"glider.gol", "bgol", "", "glider.bgol"},
		{filepath.Join("patterns", "glider.gol"), "pgm", "", filepath.Join("patterns", "glider.pgm")},
		{filepath.Join("patterns", "glider.gol"), "gol", "out", filepath.Join("out", "glider.gol")},
		{"noext", "bgol", "", "noext.bgol"},
	}
	for _, tc := range cases {
		if got := outputPath(tc.path, tc.format, tc.outDir); got != tc.want {
			t.Fatalf("outputPath(%q,%q,%q) = %q, want %q", tc.path, tc.format, tc.outDir, got, tc.want)
		}
	}
}

func TestStartStateCentersPattern(t *testing.T) {
	cfg := &Config{Pattern: "glider", Width: 9, Height: 7}
	start, err := startState(cfg)
	if err != nil {
		t.Fatalf("start state: %v", err)
	}
	if start.Width() != 9 || start.Height() != 7 {
		t.Fatalf("field %dx%d, expected 9x7", start.Width(), start.Height())
	}
	if start.AliveCells() != 5 {
		t.Fatalf("population %d, expected the glider's 5", start.AliveCells())
	}
	// Centering the 3x3 box in 9x7 gives offset (3,2), so the glider's
	// top cell (1,0) sits at (4,2).
	if c, _ := start.Get(4, 2); c != grid.Alive {
		t.Fatalf("glider not centered:\n%s", start)
	}
}

func TestStartStateGrowsForBigPattern(t *testing.T) {
	cfg := &Config{Pattern: "lwss", Width: 1, Height: 1}
	start, err := startState(cfg)
	if err != nil {
		t.Fatalf("start state: %v", err)
	}
	if start.Width() != 5 || start.Height() != 4 {
		t.Fatalf("field %dx%d, expected the lwss bounding box 5x4", start.Width(), start.Height())
	}
}

func TestStartStateUnknownPattern(t *testing.T) {
	cfg := &Config{Pattern: "basilisk", Width: 9, Height: 9}
	if _, err := startState(cfg); err == nil || !strings.Contains(err.Error(), "basilisk") {
		t.Fatalf("err = %v, expected unknown creature failure", err)
	}
}

func TestStartStateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.gol")
	want := zoo.RPentomino()
	if err := zoo.Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	start, err := startState(&Config{Load: path})
	if err != nil {
		t.Fatalf("start state: %v", err)
	}
	if !start.Equal(want) {
		t.Fatalf("loaded start state differs from the saved grid")
	}
}

func TestStartStateSoupFallback(t *testing.T) {
	cfg := &Config{Width: 10, Height: 10, Density: 1, Seed: 1}
	start, err := startState(cfg)
	if err != nil {
		t.Fatalf("start state: %v", err)
	}
	if start.AliveCells() != 100 {
		t.Fatalf("density-1 soup has %d alive cells", start.AliveCells())
	}
}

func TestRunSavesFinalState(t *testing.T) {
	out := filepath.Join(t.TempDir(), "final.bgol")
	cfg := NewConfig()
	cfg.Quiet = true
	cfg.Width, cfg.Height = 12, 12
	cfg.Steps = 3
	cfg.Save = out

	if err := Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	g, err := zoo.Load(out)
	if err != nil {
		t.Fatalf("load saved state: %v", err)
	}
	if g.Width() != 12 || g.Height() != 12 {
		t.Fatalf("saved state is %dx%d, expected 12x12", g.Width(), g.Height())
	}
}

func TestRunAppliesRotation(t *testing.T) {
	out := filepath.Join(t.TempDir(), "final.bgol")
	cfg := &Config{Pattern: "lwss", Width: 1, Height: 1, Rotate: 1, Steps: 0, Quiet: true, Save: out}

	if err := Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	g, err := zoo.Load(out)
	if err != nil {
		t.Fatalf("load saved state: %v", err)
	}
	// A quarter turn swaps the 5x4 bounding box.
	if g.Width() != 4 || g.Height() != 5 {
		t.Fatalf("saved state is %dx%d, expected 4x5", g.Width(), g.Height())
	}
}

func TestRunReportsLoadFailure(t *testing.T) {
	cfg := &Config{Load: filepath.Join(t.TempDir(), "nope.gol"), Quiet: true}
	if err := Run(cfg); !errors.Is(err, zoo.ErrFileNotFound) {
		t.Fatalf("err = %v, expected ErrFileNotFound", err)
	}
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var paths []string
	wants := map[string]int{"a": 0, "b": 0, "c": 0}
	for i, name := range []string{"a", "b", "c"} {
		g := zoo.Soup(9, 6, 0.5, int64(i))
		wants[name] = g.AliveCells()
		path := filepath.Join(dir, name+".gol")
		if err := zoo.Save(path, g); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		paths = append(paths, path)
	}

	if err := ConvertAll(paths, "bgol", outDir, 2); err != nil {
		t.Fatalf("convert: %v", err)
	}
	for name, want := range wants {
		g, err := zoo.Load(filepath.Join(outDir, name+".bgol"))
		if err != nil {
			t.Fatalf("load converted %s: %v", name, err)
		}
		if g.AliveCells() != want {
			t.Fatalf("converted %s has %d alive cells, expected %d", name, g.AliveCells(), want)
		}
	}
}

func TestConvertAllPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.gol")
	if err := zoo.Save(good, zoo.Glider()); err != nil {
		t.Fatalf("save: %v", err)
	}
	bad := filepath.Join(dir, "bad.gol")
	if err := os.WriteFile(bad, []byte("not a header\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := ConvertAll([]string{good, bad}, "pgm", "", 0)
	if !errors.Is(err, zoo.ErrInvalidFormat) {
		t.Fatalf("err = %v, expected ErrInvalidFormat", err)
	}

	if err := ConvertAll(nil, "pgm", "", 0); err == nil {
		t.Fatalf("empty input list accepted")
	}
}

func TestPacerUnpaced(t *testing.T) {
	p := NewPacer(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		p.Wait()
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("unpaced Wait blocked for %v", elapsed)
	}
}

func TestPacerHoldsRate(t *testing.T) {
	p := NewPacer(1000)
	start := time.Now()
	for i := 0; i < 5; i++ {
		p.Wait()
	}
	// First call is free, the remaining four wait a millisecond each.
	if elapsed := time.Since(start); elapsed < 4*time.Millisecond {
		t.Fatalf("paced loop finished in %v, expected at least 4ms", elapsed)
	}
}
