// Package main is the desktop entry of the verdant landing hero.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--config <path>    Load the field configuration from a file instead of the embedded one
//	--preset <name>    Tuning preset (calm, lively); saved for the next start
//	--seed <n>         Seed for particle placement (0 = time based)
//	--fullscreen       Start in fullscreen
//
// Controls:
//
//	F11  - Toggle fullscreen
//	C    - Toggle the custom cursor
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/verdant/pkg/app"
	"github.com/decker502/verdant/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "Field config file (default: embedded data/field.yaml)")
	presetFlag     = flag.String("preset", "", "Tuning preset name")
	seedFlag       = flag.Int64("seed", 0, "Particle RNG seed (0 = time based)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Preset:     *presetFlag,
		Seed:       *seedFlag,
		Fullscreen: *fullscreenFlag,
	})
	if err != nil {
		// logging may already be silenced
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer gameApp.Close()

	window := gameApp.FieldConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
	}
}
