package main

import (
	"flag"
	"log"

	"github.com/decker502/cardash/pkg/app"
	"github.com/decker502/cardash/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	configPath := flag.String("config", "", "dashboard config file (.yaml, .yml or .toml)")
	panel := flag.String("panel", "", "initial panel: lock, charge, climate or tyre")
	flag.Parse()

	embedded.Init(dataFS)

	dashboard, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Panel:      *panel,
	})
	if err != nil {
		log.Fatalf("dashboard init failed: %v", err)
	}

	window := dashboard.Dashboard().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(dashboard); err != nil {
		log.Fatal(err)
	}
}
