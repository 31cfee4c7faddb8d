// Command planet opens an interactive orbit view of the Earth lit by the current sun position.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/oxy-planet/engine"
	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-planet/engine/sun"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
)

func printHelp(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Planet - Interactive Earth Viewer

Usage:
  %[1]s [options]

Drag with the left mouse button to orbit, scroll to zoom, Escape to quit.

`, os.Args[0])

	printGroup(fs, "Window", []string{"width", "height", "title"})
	printGroup(fs, "Rendering", []string{"fps-cap", "tick-rate", "sun-model", "max-texture"})
	printGroup(fs, "Assets", []string{"assets", "config"})
	printGroup(fs, "Misc", []string{"profile", "h"})
}

func printGroup(fs *flag.FlagSet, title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := fs.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-12s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	fs := flag.CommandLine
	f := defineFlags(fs)
	fs.Usage = func() { printHelp(fs) }
	flag.Parse()

	if *f.showHelp {
		printHelp(fs)
		return
	}

	cfg, err := f.resolve(fs)
	if err != nil {
		log.Fatal(err)
	}

	model, err := sun.ParseModel(cfg.SunModel)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.NewEngine(
		engine.WithProfiling(cfg.Profile),
		engine.WithTickRate(cfg.TickRate),
		engine.WithWindowOptions(
			window.WithTitle(cfg.Title),
			window.WithWidth(cfg.Width),
			window.WithHeight(cfg.Height),
		),
		engine.WithLoader(loader.NewLoader(loader.WithMaxTextureSize(cfg.MaxTexture))),
		engine.WithAssets(loader.DefaultAssets(cfg.Assets)),
		engine.WithRendererOptions(renderer.WithPresentMode(renderer.PresentModeVSync)),
		engine.WithSchedulerOptions(
			scheduler.WithFrameRateCap(cfg.FPSCap),
			scheduler.WithSunModel(model),
		),
	)

	log.Printf("planet: sun model %s, assets %s", model.Name(), cfg.Assets)
	if err := eng.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
