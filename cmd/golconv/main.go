package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/apex/log"

	"golife/internal/app"
)

func main() {
	format := flag.String("format", "bgol", "target format: gol, bgol or pgm")
	outDir := flag.String("outdir", "", "directory for converted files (default: next to each input)")
	jobs := flag.Int("jobs", runtime.NumCPU(), "parallel conversions")
	flag.Parse()

	switch *format {
	case "gol", "bgol", "pgm":
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: golconv [flags] file...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := app.ConvertAll(flag.Args(), *format, *outDir, *jobs); err != nil {
		log.Fatalf("golconv: %v", err)
	}
}
