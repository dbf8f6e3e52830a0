package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"golife/pkg/zoo"
)

// ConvertAll rewrites every input file into the target format, running up
// to jobs conversions in parallel. Every conversion works on its own grid
// and its own files, so no locking is needed between them.
func ConvertAll(paths []string, format, outDir string, jobs int) error {
	if len(paths) == 0 {
		return fmt.Errorf("no input files")
	}
	var eg errgroup.Group
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for _, path := range paths {
		eg.Go(func() error {
			out := outputPath(path, format, outDir)
			g, err := zoo.Load(path)
			if err != nil {
				return err
			}
			if err := zoo.Save(out, g); err != nil {
				return err
			}
			log.WithFields(log.Fields{"from": path, "to": out}).Info("converted")
			return nil
		})
	}
	return eg.Wait()
}

// outputPath swaps path's extension for the target format, rehoming the
// file into outDir when one is given.
func outputPath(path, format, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := base + "." + format
	if outDir != "" {
		return filepath.Join(outDir, out)
	}
	return filepath.Join(filepath.Dir(path), out)
}
