// Package main runs the particle field headlessly and prints the final state
// as YAML. Useful for tuning presets without opening a window.
//
// Usage:
//
//	go run ./cmd/fieldsim [flags]
//
// Flags:
//
//	--ticks <n>        Number of ticks to run (default 600)
//	--fps <n>          Frame rate; 0 runs unthrottled (default 0)
//	--seed <n>         RNG seed (default 1)
//	--config <path>    Field config file (default data/field.yaml)
//	--preset <name>    Apply a preset from data/presets
//	--pointer x,y      Hold the pointer at pixel (x, y) for the whole run
//	--width, --height  Viewport in pixels (default 1280x800)
//	--verbose          Enable verbose logging
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/verdant/pkg/clock"
	"github.com/decker502/verdant/pkg/config"
	"github.com/decker502/verdant/pkg/embedded"
	"github.com/decker502/verdant/pkg/field"
	"github.com/decker502/verdant/pkg/loop"
	"github.com/decker502/verdant/pkg/pointer"
)

var (
	ticksFlag   = flag.Int("ticks", 600, "Number of ticks to run")
	fpsFlag     = flag.Int("fps", 0, "Frames per second (0 = unthrottled)")
	seedFlag    = flag.Int64("seed", 1, "RNG seed")
	configFlag  = flag.String("config", config.DefaultFieldConfigPath, "Field config file")
	presetFlag  = flag.String("preset", "", "Preset name from data/presets")
	pointerFlag = flag.String("pointer", "", "Hold the pointer at x,y (pixels)")
	widthFlag   = flag.Float64("width", 1280, "Viewport width in pixels")
	heightFlag  = flag.Float64("height", 800, "Viewport height in pixels")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fieldsim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	hold, err := parsePoint(*pointerFlag)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFieldConfig(*configFlag)
	if err != nil {
		return err
	}
	if *presetFlag != "" {
		// presets are read relative to the working directory
		embedded.Init(os.DirFS("."))
		if cfg, err = config.ApplyPreset(cfg, *presetFlag); err != nil {
			return err
		}
	}

	f, err := field.New(cfg.Field, rand.New(rand.NewSource(*seedFlag)))
	if err != nil {
		return err
	}
	animator, err := loop.New(f, pointer.NewTracker(clock.Real(), cfg.Pointer.QuietPeriod()))
	if err != nil {
		return err
	}
	animator.SetViewport(*widthFlag, *heightFlag)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	frames := loop.Take(ctx, loop.Ticker(ctx, *fpsFlag), *ticksFlag)
	if hold != nil {
		frames = holdPointer(ctx, frames, animator, hold.X, hold.Y)
	}

	start := time.Now()
	runErr := animator.Run(ctx, frames)
	log.Printf("[fieldsim] %d ticks in %v", animator.Ticks(), time.Since(start))
	if runErr != nil {
		log.Printf("[fieldsim] interrupted: %v", runErr)
	}

	r := buildReport(*seedFlag, animator.Ticks(), animator.Viewport(), hold, animator.Snapshot())
	return writeReport(os.Stdout, r)
}

// holdPointer moves the pointer to (x, y) before every forwarded frame, so
// the debounce never settles and the target stays active.
func holdPointer(ctx context.Context, in <-chan time.Time, a *loop.Animator, x, y float64) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		for t := range in {
			a.Move(x, y)
			select {
			case out <- t:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
