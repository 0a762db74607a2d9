package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"stochlife/internal/app"
	"stochlife/internal/core"
	_ "stochlife/internal/engine/dense"
	_ "stochlife/internal/engine/sparse"
	_ "stochlife/internal/hosts/termhost"
	"stochlife/internal/statsview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: life [flags] [rows cols scale]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := cfg.ParseArgs(flag.Args()); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q (available: %s)", cfg.Engine, strings.Join(core.EngineNames(), ", "))
	}

	hostName := cfg.Host
	if hostName == "" {
		hostName = app.DefaultHost()
	}
	newHost, ok := app.Hosts()[hostName]
	if !ok {
		log.Fatalf("unknown host %q (available: %s)", hostName, strings.Join(app.HostNames(), ", "))
	}

	if cfg.StatsView {
		url, stop, err := statsview.Serve(cfg.StatsAddr, func(err error) { log.Printf("statsview: %v", err) })
		switch {
		case errors.Is(err, statsview.ErrNotBuilt):
			log.Print(err)
		case err != nil:
			log.Fatal(err)
		default:
			defer stop()
			log.Printf("runtime statistics at %s", url)
		}
	}

	engine := factory(cfg.Rows, cfg.Cols, float64(cfg.Scale), core.NewRNG(cfg.Seed))
	host, err := newHost(cfg)
	if err != nil {
		log.Fatalf("%s host: %v", hostName, err)
	}
	if err := host.Run(app.NewSession(engine)); err != nil {
		log.Fatal(err)
	}
}
