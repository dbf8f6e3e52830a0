package main

import (
	"flag"

	"github.com/apex/log"

	"golife/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg); err != nil {
		log.Fatalf("golife: %v", err)
	}
}
