package app

import (
	"fmt"

	"github.com/apex/log"

	"golife/pkg/grid"
	"golife/pkg/life"
	"golife/pkg/zoo"
)

// Run drives one simulation: build the start state, evolve it, render and
// optionally persist the result.
func Run(cfg *Config) error {
	if cfg.List {
		for _, name := range zoo.Creatures() {
			fmt.Println(name)
		}
		return nil
	}
	if cfg.Steps < 0 {
		cfg.Steps = 0
	}

	start, err := startState(cfg)
	if err != nil {
		return err
	}
	if cfg.Rotate != 0 {
		start = start.Rotate(cfg.Rotate)
	}

	world := life.NewFromGrid(start)
	log.WithFields(log.Fields{
		"width":    world.Width(),
		"height":   world.Height(),
		"alive":    world.AliveCells(),
		"steps":    cfg.Steps,
		"toroidal": cfg.Toroidal,
	}).Info("starting")

	if cfg.Every > 0 {
		pacer := NewPacer(cfg.TPS)
		for s := 1; s <= cfg.Steps; s++ {
			pacer.Wait()
			world.Step(cfg.Toroidal)
			if !cfg.Quiet && s%cfg.Every == 0 && s != cfg.Steps {
				render(world, s)
			}
		}
	} else {
		world.Advance(cfg.Steps, cfg.Toroidal)
	}
	if !cfg.Quiet {
		render(world, cfg.Steps)
	}

	if cfg.Save != "" {
		if err := zoo.Save(cfg.Save, world.State()); err != nil {
			return err
		}
		log.WithField("path", cfg.Save).Info("saved")
	}
	return nil
}

// startState builds the initial grid: a loaded file wins, then a named
// creature centered in the configured dimensions, then a random soup.
func startState(cfg *Config) (*grid.Grid, error) {
	if cfg.Load != "" {
		return zoo.Load(cfg.Load)
	}
	if cfg.Pattern != "" {
		creature, ok := zoo.Spawn(cfg.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown creature %q (try -list)", cfg.Pattern)
		}
		field := grid.New(max(cfg.Width, creature.Width()), max(cfg.Height, creature.Height()))
		x0 := (field.Width() - creature.Width()) / 2
		y0 := (field.Height() - creature.Height()) / 2
		if err := field.Merge(creature, x0, y0, false); err != nil {
			return nil, err
		}
		return field, nil
	}
	return zoo.Soup(cfg.Width, cfg.Height, cfg.Density, cfg.Seed), nil
}

func render(w *life.World, generation int) {
	fmt.Printf("generation %d, %d alive\n%s", generation, w.AliveCells(), w.State())
}
