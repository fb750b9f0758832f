package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nevisdale/cyclenes/internal/config"
	"github.com/nevisdale/cyclenes/internal/nes"
	"github.com/nevisdale/cyclenes/internal/statsview"
	"github.com/nevisdale/cyclenes/internal/ui"
	"github.com/pkg/profile"
)

func main() {
	var (
		configPath = flag.String("config", "cyclenes.yaml", "path to the YAML config")
		scale      = flag.Int("scale", 0, "window scale, overrides the config")
		debug      = flag.Bool("debug", false, "show the debug panel")
		headless   = flag.Bool("headless", false, "run without a window")
		frames     = flag.Int("frames", 0, "frames to run in headless mode, overrides the config")
		screenshot = flag.String("screenshot", "", "PNG file written after a headless run")
		trace      = flag.String("trace", "", "log every instruction in nestest format to this file")
		profMode   = flag.String("profile", "", "cpu or mem profiling")
		stats      = flag.Bool("statsview", false, "serve runtime statistics over HTTP")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] rom.nes\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("couldn't load config: %s\n", err)
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *debug {
		cfg.Debug = true
	}
	if *frames > 0 {
		cfg.Headless.Frames = *frames
	}
	if *screenshot != "" {
		cfg.Headless.Screenshot = *screenshot
	}
	if *trace != "" {
		cfg.Trace = *trace
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad settings: %s\n", err)
	}

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("unknown profile mode %q\n", *profMode)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	cart, err := nes.NewCartFromFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("couldn't load cart: %s\n", err)
	}
	console := nes.NewConsole()
	console.LoadCart(cart)

	if cfg.Trace != "" {
		f, err := os.Create(cfg.Trace)
		if err != nil {
			log.Fatalf("couldn't create trace file: %s\n", err)
		}
		defer f.Close()
		console.SetTrace(log.New(f, "", 0))
	}

	if *headless {
		if err := runHeadless(console, cfg.Headless, os.Stdout); err != nil {
			log.Printf("headless run failed: %s\n", err)
		}
		return
	}

	gui, err := ui.New(console, cfg)
	if err != nil {
		log.Fatalf("couldn't create ui: %s\n", err)
	}
	if err := ui.RunUI(gui); err != nil {
		log.Printf("ui stopped: %s\n", err)
	}
}
